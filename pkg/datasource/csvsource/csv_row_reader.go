package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var _ RowReader = (*CSVRowReader)(nil)

// RowReader is an interface for reading price rows.
type RowReader interface {
	Read() (types.PriceRow, error)
	ReadAll() ([]types.PriceRow, error)
}

// CSVRowReader is a RowReader that reads a csv file with a header line.
type CSVRowReader struct {
	csv     *csv.Reader
	format  Format
	decoder CSVRowDecoder
	columns Columns

	// line is the 1-based line number of the last record read, the header is line 1.
	line int
}

// MakeCSVRowReader is a factory method type that creates a new CSVRowReader.
type MakeCSVRowReader func(csv *csv.Reader) *CSVRowReader

// NewCSVRowReader creates a new CSVRowReader for the given format.
func NewCSVRowReader(csv *csv.Reader, format Format) *CSVRowReader {
	return NewCSVRowReaderWithDecoder(csv, format, DecoderOf(format))
}

// NewCSVRowReaderWithDecoder creates a new CSVRowReader with the given decoder.
func NewCSVRowReaderWithDecoder(csv *csv.Reader, format Format, decoder CSVRowDecoder) *CSVRowReader {
	csv.FieldsPerRecord = -1
	csv.TrimLeadingSpace = true
	return &CSVRowReader{
		csv:     csv,
		format:  format,
		decoder: decoder,
	}
}

// Columns returns the resolved header, it is nil until the first Read.
func (r *CSVRowReader) Columns() Columns {
	return r.columns
}

func (r *CSVRowReader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: empty file", ErrMissingColumns)
	} else if err != nil {
		return err
	}

	r.line++
	columns, err := NewColumns(r.format, header)
	if err != nil {
		return err
	}

	r.columns = columns
	return nil
}

// Read reads the next row. Records with an empty time label are skipped.
func (r *CSVRowReader) Read() (types.PriceRow, error) {
	var empty types.PriceRow

	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return empty, err
		}
	}

	for {
		rec, err := r.csv.Read()
		if err != nil {
			return empty, err
		}

		r.line++
		if len(rec) < r.columns.Width() {
			return empty, fmt.Errorf("line %d: %w", r.line, ErrNotEnoughColumns)
		}

		row, err := r.decoder(rec, r.columns)
		if errors.Is(err, ErrEmptyTimeLabel) {
			log.Debugf("skipping line %d without a time label", r.line)
			continue
		} else if err != nil {
			return empty, fmt.Errorf("line %d: %w", r.line, err)
		}

		return row, nil
	}
}

// ReadAll reads all the rows of the underlying csv data.
func (r *CSVRowReader) ReadAll() ([]types.PriceRow, error) {
	var rows []types.PriceRow
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}
