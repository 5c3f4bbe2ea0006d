package loader

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var log = logrus.WithField("component", "loader")

// SeriesSource lists the datasets of a data source and loads them into series.
type SeriesSource interface {
	// List returns the dataset keys in navigation order.
	List(ctx context.Context) ([]string, error)

	Load(ctx context.Context, key string) (*types.Series, error)
}

// LoadError is returned when a dataset can not be loaded.
type LoadError struct {
	Source string
	Key    string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s dataset %q: %v", e.Source, e.Key, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadAll loads the datasets of the given keys concurrently, the result keeps the key order.
func LoadAll(ctx context.Context, source SeriesSource, keys []string) ([]*types.Series, error) {
	all := make([]*types.Series, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			series, err := source.Load(ctx, key)
			if err != nil {
				return err
			}

			all[i] = series
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("loaded %d datasets", len(all))
	return all, nil
}
