package loader

import (
	"context"

	"github.com/jaky1206/renko-chart-demo/pkg/datasource/csvsource"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// FileSource loads the csv files of a directory, or a fixed list of files.
type FileSource struct {
	Dir          string
	Paths        []string
	Format       csvsource.Format
	PriorityYear string
}

func (s *FileSource) List(ctx context.Context) ([]string, error) {
	if len(s.Paths) > 0 {
		files := make([]string, len(s.Paths))
		copy(files, s.Paths)
		return files, nil
	}

	files, err := csvsource.DiscoverFiles(s.Dir, s.PriorityYear)
	if err != nil {
		return nil, &LoadError{Source: "file", Key: s.Dir, Err: err}
	}

	return files, nil
}

func (s *FileSource) Load(ctx context.Context, key string) (*types.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series, err := csvsource.ReadSeriesFromCSV(key, s.Format)
	if err != nil {
		return nil, &LoadError{Source: "file", Key: key, Err: err}
	}

	log.Debugf("loaded %d rows from %s", series.Len(), key)
	return series, nil
}
