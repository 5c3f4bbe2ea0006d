package csvsource

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// WriteSeries writes the series with its overlay columns to path, creating the directory when
// needed.
func WriteSeries(path string, series types.CsvFormatter) (err error) {
	records := series.CsvRecords()
	if len(records) == 0 {
		return fmt.Errorf("no rows to write")
	}

	if dir := filepath.Dir(path); dir != "" {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(series.CsvHeader()); err != nil {
		return errors.Wrap(err, "writing header to file")
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "writing record to file")
		}
	}

	w.Flush()
	return w.Error()
}
