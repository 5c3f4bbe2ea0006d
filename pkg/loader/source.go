package loader

import (
	"context"
	"fmt"

	"github.com/jaky1206/renko-chart-demo/pkg/config"
	"github.com/jaky1206/renko-chart-demo/pkg/datasource/csvsource"
	"github.com/jaky1206/renko-chart-demo/pkg/service"
)

// NewSource creates the series source of the config. The returned close function releases
// the database connection of a database source.
func NewSource(ctx context.Context, cfg *config.Config) (SeriesSource, func() error, error) {
	switch cfg.Source {
	case config.SourceTypeFile, "":
		format, err := csvsource.ParseFormat(cfg.Files.Format)
		if err != nil {
			return nil, nil, err
		}

		return &FileSource{
			Dir:          cfg.Files.Dir,
			Paths:        cfg.Files.Paths,
			Format:       format,
			PriorityYear: cfg.Files.PriorityYear,
		}, func() error { return nil }, nil

	case config.SourceTypeDatabase:
		db := service.NewDatabaseService(cfg.Database.Driver, cfg.Database.ConnectionString())
		if err := db.Connect(ctx); err != nil {
			return nil, nil, err
		}

		return &DatabaseSource{
			Service: service.NewWeeklyDataService(db.DB, cfg.Database.Table),
		}, db.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: unknown source %q", config.ErrInvalidConfig, cfg.Source)
}
