package loader

import (
	"context"
	"strconv"

	"github.com/jaky1206/renko-chart-demo/pkg/service"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

// DatabaseSource loads the weeks of the weekly table. The keys are the week strings,
// a plain week number selects the week by number only.
type DatabaseSource struct {
	Service *service.WeeklyDataService
}

func (s *DatabaseSource) List(ctx context.Context) ([]string, error) {
	weeks, err := s.Service.QueryWeeks(ctx)
	if err != nil {
		return nil, &LoadError{Source: "database", Key: s.Service.Table, Err: err}
	}

	keys := make([]string, 0, len(weeks))
	for _, week := range weeks {
		keys = append(keys, week.String())
	}

	return keys, nil
}

func (s *DatabaseSource) Load(ctx context.Context, key string) (*types.Series, error) {
	if weekNo, err := strconv.Atoi(key); err == nil {
		series, err := s.Service.QueryWeekNo(ctx, weekNo)
		if err != nil {
			return nil, &LoadError{Source: "database", Key: key, Err: err}
		}

		return series, nil
	}

	week, err := service.ParseWeek(key)
	if err != nil {
		return nil, &LoadError{Source: "database", Key: key, Err: err}
	}

	series, err := s.Service.QueryWeekRows(ctx, week)
	if err != nil {
		return nil, &LoadError{Source: "database", Key: key, Err: err}
	}

	return series, nil
}
