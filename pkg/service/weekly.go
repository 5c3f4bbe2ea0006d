package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

const DefaultWeeklyTable = "NQ_Weekly_Data"

const weekTimeLayout = "2006-01-02 15:04:05"

var weekPattern = regexp.MustCompile(`Week No: (\d+) From: (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) To: (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)

var ErrInvalidWeek = errors.New("invalid week string")

// Week is a (WeekNo, WeekStartDate, WeekEndDate) window of the weekly table.
type Week struct {
	No    int        `json:"no" db:"WeekNo"`
	Start types.Time `json:"start" db:"WeekStartDate"`
	End   types.Time `json:"end" db:"WeekEndDate"`
}

func (w Week) String() string {
	return fmt.Sprintf("Week No: %d From: %s To: %s",
		w.No,
		w.Start.Time().Format(weekTimeLayout),
		w.End.Time().Format(weekTimeLayout))
}

// ParseWeek parses the string form of Week back into the week window.
func ParseWeek(s string) (Week, error) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return Week{}, fmt.Errorf("%w: %q", ErrInvalidWeek, s)
	}

	no, err := strconv.Atoi(m[1])
	if err != nil {
		return Week{}, fmt.Errorf("%w: %q: %v", ErrInvalidWeek, s, err)
	}

	start, err := time.Parse(weekTimeLayout, m[2])
	if err != nil {
		return Week{}, fmt.Errorf("%w: %q: %v", ErrInvalidWeek, s, err)
	}

	end, err := time.Parse(weekTimeLayout, m[3])
	if err != nil {
		return Week{}, fmt.Errorf("%w: %q: %v", ErrInvalidWeek, s, err)
	}

	return Week{No: no, Start: types.Time(start), End: types.Time(end)}, nil
}

// WeeklyDataService queries the renko rows stored per week.
type WeeklyDataService struct {
	DB    *sqlx.DB
	Table string
}

func NewWeeklyDataService(db *sqlx.DB, table string) *WeeklyDataService {
	if len(table) == 0 {
		table = DefaultWeeklyTable
	}

	return &WeeklyDataService{
		DB:    db,
		Table: table,
	}
}

func (s *WeeklyDataService) dialect() DatabaseDialect {
	return GetDialect(s.DB.DriverName())
}

func (s *WeeklyDataService) selectRows(columns ...string) sq.SelectBuilder {
	d := s.dialect()
	var escaped []string
	for _, c := range columns {
		escaped = append(escaped, d.EscapeColumnName(c))
	}

	escaped = append(escaped,
		d.EscapeColumnName("Indicator_1")+" AS "+d.EscapeColumnName("Moving_Average"),
		d.EscapeColumnName("Indicator_2")+" AS "+d.EscapeColumnName("Median"),
	)

	return d.ConfigurePlaceholder(sq.Select(escaped...).From(d.EscapeTableName(s.Table)))
}

// QueryWeeks lists the distinct weeks of the table, in chronological order.
func (s *WeeklyDataService) QueryWeeks(ctx context.Context) ([]Week, error) {
	d := s.dialect()
	query, args, err := d.ConfigurePlaceholder(
		sq.Select(
			d.EscapeColumnName("WeekStartDate"),
			d.EscapeColumnName("WeekEndDate"),
			d.EscapeColumnName("WeekNo"),
		).
			Distinct().
			From(d.EscapeTableName(s.Table)).
			OrderBy(d.EscapeColumnName("WeekStartDate"), d.EscapeColumnName("WeekNo")),
	).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query weeks")
	}

	defer rows.Close()

	var weeks []Week
	for rows.Next() {
		var week Week
		if err := rows.Scan(&week.Start, &week.End, &week.No); err != nil {
			return nil, errors.Wrap(err, "scan week")
		}

		weeks = append(weeks, week)
	}

	log.Debugf("queried %d weeks from %s", len(weeks), s.Table)
	return weeks, rows.Err()
}

// QueryWeekRows loads the rows of the given week window ordered by Time_Start.
// NULL prices are kept as NaN so that the decomposition reports them.
func (s *WeeklyDataService) QueryWeekRows(ctx context.Context, week Week) (*types.Series, error) {
	d := s.dialect()
	query, args, err := s.selectRows("Time_Start", "Renko_Open", "Renko_Close", "Volume").
		Where(d.EscapeColumnName("WeekStartDate")+" = ?", week.Start.Time()).
		Where(d.EscapeColumnName("WeekEndDate")+" = ?", week.End.Time()).
		Where(d.EscapeColumnName("WeekNo")+" = ?", week.No).
		OrderBy(d.EscapeColumnName("Time_Start")).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", week)
	}

	defer rows.Close()

	series := &types.Series{
		Name:   week.String(),
		Source: s.Table,
	}

	for rows.Next() {
		var t types.Time
		var open, closePrice, volume, ma, median sql.NullFloat64
		if err := rows.Scan(&t, &open, &closePrice, &volume, &ma, &median); err != nil {
			return nil, errors.Wrapf(err, "scan %s", week)
		}

		series.Rows = append(series.Rows, types.PriceRow{
			Time:          t,
			Open:          floatOrNaN(open),
			Close:         floatOrNaN(closePrice),
			Volume:        volume.Float64,
			MovingAverage: ma.Float64,
			Median:        median.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debugf("queried %d rows of %s", len(series.Rows), week)
	return series, nil
}

// QueryWeekNo loads the rows of a week by its number only. Rows with any NULL value are dropped.
func (s *WeeklyDataService) QueryWeekNo(ctx context.Context, weekNo int) (*types.Series, error) {
	d := s.dialect()
	query, args, err := s.selectRows("Time_Start", "Time_End", "Renko_Open", "Renko_Close", "Volume").
		Where(d.EscapeColumnName("WeekNo")+" = ?", weekNo).
		OrderBy(d.EscapeColumnName("Time_Start")).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "query week no %d", weekNo)
	}

	defer rows.Close()

	series := &types.Series{
		Name:   fmt.Sprintf("Week No: %d", weekNo),
		Source: s.Table,
	}

	dropped := 0
	for rows.Next() {
		var start, end types.Time
		var open, closePrice, volume, ma, median sql.NullFloat64
		if err := rows.Scan(&start, &end, &open, &closePrice, &volume, &ma, &median); err != nil {
			return nil, errors.Wrapf(err, "scan week no %d", weekNo)
		}

		if !open.Valid || !closePrice.Valid || !volume.Valid || !ma.Valid || !median.Valid {
			dropped++
			continue
		}

		series.Rows = append(series.Rows, types.PriceRow{
			Time:          start,
			EndTime:       end,
			Open:          open.Float64,
			Close:         closePrice.Float64,
			Volume:        volume.Float64,
			MovingAverage: ma.Float64,
			Median:        median.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if dropped > 0 {
		log.Warnf("dropped %d incomplete rows of week no %d", dropped, weekNo)
	}

	return series, nil
}

func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}

	return v.Float64
}
