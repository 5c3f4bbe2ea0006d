package csvsource

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// DefaultPriorityYear is the year whose files are listed first by DiscoverFiles.
const DefaultPriorityYear = "2023"

var monthPattern = regexp.MustCompile(`M(\d+)`)

// ReadSeriesFromCSV reads a single csv file into a series named after the file.
func ReadSeriesFromCSV(path string, format Format) (*types.Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	//nolint:errcheck // Read ops only so safe to ignore err return
	defer file.Close()

	series, err := ReadSeries(file, filepath.Base(path), format)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	series.Source = path
	return series, nil
}

// ReadSeries reads all the rows of r into a series.
func ReadSeries(r io.Reader, name string, format Format) (*types.Series, error) {
	reader := NewCSVRowReader(csv.NewReader(r), format)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return &types.Series{
		Name: name,
		Rows: rows,
	}, nil
}

// DiscoverFiles lists the .csv files of a directory in navigation order: the files of the
// priority year first, then by the month number following "M" in the file name, files without
// a month number last. Ties are ordered by name.
func DiscoverFiles(dir string, priorityYear string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		files = append(files, filepath.Join(dir, entry.Name()))
	}

	SortFiles(files, priorityYear)
	return files, nil
}

// SortFiles sorts the file paths in place with the DiscoverFiles order.
func SortFiles(files []string, priorityYear string) {
	type sortKey struct {
		priority bool
		month    float64
		name     string
	}

	keyOf := func(path string) sortKey {
		name := filepath.Base(path)
		k := sortKey{
			priority: len(priorityYear) > 0 && strings.Contains(name, priorityYear),
			month:    math.Inf(1),
			name:     name,
		}

		if m := monthPattern.FindStringSubmatch(name); m != nil {
			if month, err := strconv.Atoi(m[1]); err == nil {
				k.month = float64(month)
			}
		}

		return k
	}

	sort.SliceStable(files, func(i, j int) bool {
		a, b := keyOf(files[i]), keyOf(files[j])
		if a.priority != b.priority {
			return a.priority
		}

		if a.month != b.month {
			return a.month < b.month
		}

		return a.name < b.name
	})
}
