package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaky1206/renko-chart-demo/pkg/config"
	"github.com/jaky1206/renko-chart-demo/pkg/datasource/csvsource"
	"github.com/jaky1206/renko-chart-demo/pkg/service"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

type mapSource map[string]*types.Series

func (s mapSource) List(ctx context.Context) ([]string, error) {
	var keys []string
	for k := range s {
		keys = append(keys, k)
	}
	return keys, nil
}

func (s mapSource) Load(ctx context.Context, key string) (*types.Series, error) {
	series, ok := s[key]
	if !ok {
		return nil, &LoadError{Source: "map", Key: key, Err: errors.New("not found")}
	}
	return series, nil
}

func TestFileSource(t *testing.T) {
	source := &FileSource{
		Dir:          "testdata/custom-format",
		Format:       csvsource.FormatRenko,
		PriorityYear: "2023",
	}

	keys, err := source.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata", "custom-format", "NQ-2023-M11.csv"),
		filepath.Join("testdata", "custom-format", "NQ-2024-M2.csv"),
		filepath.Join("testdata", "custom-format", "broken.csv"),
	}, keys)

	series, err := source.Load(context.Background(), keys[1])
	require.NoError(t, err)
	assert.Equal(t, "NQ-2024-M2.csv", series.Name)
	assert.Equal(t, []float64{17000, 17020}, series.Opens())

	_, err = source.Load(context.Background(), keys[2])
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, keys[2], loadErr.Key)
	assert.ErrorIs(t, err, csvsource.ErrInvalidPriceFormat)

	t.Run("explicit paths", func(t *testing.T) {
		source := &FileSource{Paths: []string{"b.csv", "a.csv"}}
		keys, err := source.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"b.csv", "a.csv"}, keys)
	})

	t.Run("missing directory", func(t *testing.T) {
		source := &FileSource{Dir: "testdata/missing"}
		_, err := source.List(context.Background())
		assert.ErrorAs(t, err, &loadErr)
	})
}

func TestDatabaseSource(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	source := &DatabaseSource{Service: service.NewWeeklyDataService(sqlx.NewDb(db, "mysql"), "")}

	start := time.Date(2023, 1, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 6, 17, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT DISTINCT").
		WillReturnRows(sqlmock.NewRows([]string{"WeekStartDate", "WeekEndDate", "WeekNo"}).AddRow(start, end, 1))

	keys, err := source.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Week No: 1 From: 2023-01-01 18:00:00 To: 2023-01-06 17:00:00"}, keys)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE `WeekStartDate` = ? AND `WeekEndDate` = ? AND `WeekNo` = ?")).
		WithArgs(start, end, 1).
		WillReturnRows(sqlmock.NewRows([]string{"Time_Start", "Renko_Open", "Renko_Close", "Volume", "Moving_Average", "Median"}).
			AddRow(start.Add(time.Hour), 100.0, 110.0, 10.0, 0.0, 0.0))

	series, err := source.Load(context.Background(), keys[0])
	require.NoError(t, err)
	assert.Equal(t, keys[0], series.Name)
	assert.Equal(t, 1, series.Len())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE `WeekNo` = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"Time_Start", "Time_End", "Renko_Open", "Renko_Close", "Volume", "Moving_Average", "Median"}))

	series, err = source.Load(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())

	_, err = source.Load(context.Background(), "week three")
	assert.ErrorIs(t, err, service.ErrInvalidWeek)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadAll(t *testing.T) {
	source := mapSource{}
	var keys []string
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("dataset-%02d", i)
		keys = append(keys, key)
		source[key] = &types.Series{Name: key}
	}

	all, err := LoadAll(context.Background(), source, keys)
	require.NoError(t, err)
	require.Len(t, all, len(keys))
	for i, series := range all {
		assert.Equal(t, keys[i], series.Name)
	}

	_, err = LoadAll(context.Background(), source, append(keys, "missing"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "missing", loadErr.Key)

	all, err = LoadAll(context.Background(), source, nil)
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestNewSource(t *testing.T) {
	cfg := config.Default()
	cfg.Files.Dir = "testdata/custom-format"

	source, closeSource, err := NewSource(context.Background(), cfg)
	require.NoError(t, err)
	defer closeSource()
	assert.IsType(t, &FileSource{}, source)

	cfg.Files.Format = "excel"
	_, _, err = NewSource(context.Background(), cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Source = config.SourceTypeDatabase
	cfg.Database.Driver = "sqlite3"
	cfg.Database.DSN = ":memory:"
	source, closeSource, err = NewSource(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &DatabaseSource{}, source)
	assert.NoError(t, closeSource())

	cfg.Source = "ftp"
	_, _, err = NewSource(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
