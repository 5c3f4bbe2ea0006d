package csvsource

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Columns maps the logical fields of a format to their position in a record.
type Columns map[string]int

func (c Columns) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Width is the minimal record length holding every resolved field.
func (c Columns) Width() int {
	width := 0
	for _, i := range c {
		if i+1 > width {
			width = i + 1
		}
	}

	return width
}

// Get returns the trimmed cell of the given field, or "" when the field is not present.
func (c Columns) Get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

// NewColumns resolves the header of a file against the fields of the format. Header names are
// compared after trimming whitespace and case-insensitively. Every missing required column is
// reported.
func NewColumns(format Format, header []string) (Columns, error) {
	fields, ok := formatFields[format]
	if !ok {
		return nil, fmt.Errorf("unsupported csv format %q", format)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	columns := make(Columns)
	var errs error
	for _, f := range fields {
		found := false
		for _, alias := range f.aliases {
			if i, ok := positions[strings.ToLower(alias)]; ok {
				columns[f.name] = i
				found = true
				break
			}
		}

		if !found && f.required {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(f.aliases, "|")))
		}
	}

	if errs != nil {
		return nil, errs
	}

	return columns, nil
}

// MissingColumns returns the names of the missing required columns carried by an error
// returned from NewColumns.
func MissingColumns(err error) (names []string) {
	for _, e := range multierr.Errors(err) {
		msg := e.Error()
		if idx := strings.Index(msg, ": "); idx >= 0 {
			names = append(names, msg[idx+2:])
		}
	}

	return names
}
