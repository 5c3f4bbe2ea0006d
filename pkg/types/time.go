package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Time type implements the driver value for the sql drivers and the time label of a price row
type Time time.Time

var layout = "2006-01-02 15:04:05.999Z07:00"

// looseTimeFormats are the layouts seen in the exported data files, ordered from the most
// specific one to the least specific one.
var looseTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	layout,
	"2006-01-02 15:04:05.999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"2006-01-02",
	"01/02/2006",
	"15:04:05",
	"15:04",
}

// ParseTime parses the time label with a wide range of formats.
func ParseTime(s string) (Time, error) {
	s = strings.TrimSpace(s)
	for _, f := range looseTimeFormats {
		tt, err := time.Parse(f, s)
		if err == nil {
			return Time(tt), nil
		}
	}

	return Time{}, fmt.Errorf("can not parse time %q with the supported formats", s)
}

func MustParseTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Time) UnmarshalJSON(data []byte) error {
	// fallback to RFC3339
	return (*time.Time)(t).UnmarshalJSON(data)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t Time) String() string {
	return time.Time(t).String()
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) Equal(time2 time.Time) bool {
	return time.Time(t).Equal(time2)
}

func (t Time) After(time2 time.Time) bool {
	return time.Time(t).After(time2)
}

func (t Time) Before(time2 time.Time) bool {
	return time.Time(t).Before(time2)
}

// Format formats the time for a chart label; time-only labels (year 0) drop the date part.
func (t Time) Format() string {
	tt := time.Time(t)
	if tt.IsZero() {
		return ""
	}

	// time-only labels parse to year 0, some drivers return TIME columns on 0001-01-01
	if tt.Year() <= 1 && tt.YearDay() == 1 {
		return tt.Format("15:04:05")
	}

	return tt.Format("2006-01-02 15:04:05")
}

func NewTimeFromUnix(sec int64, nsec int64) Time {
	return Time(time.Unix(sec, nsec))
}

// Value implements the driver.Valuer interface
// see http://jmoiron.net/blog/built-in-interfaces/
func (t Time) Value() (driver.Value, error) {
	if time.Time(t) == (time.Time{}) {
		return nil, nil
	}
	return time.Time(t), nil
}

func (t *Time) Scan(src interface{}) error {
	switch d := src.(type) {

	case nil:
		*t = Time{}
		return nil

	case *time.Time:
		*t = Time(*d)
		return nil

	case time.Time:
		*t = Time(d)
		return nil

	case string:
		// 2020-12-16 05:17:12.994+08:00
		tt, err := ParseTime(d)
		if err != nil {
			return err
		}

		*t = tt
		return nil

	case []byte:
		// 2019-10-20 23:01:43.77+08:00
		tt, err := ParseTime(string(d))
		if err != nil {
			return err
		}

		*t = tt
		return nil

	default:

	}

	return fmt.Errorf("types.Time scan error, type: %T is not supported, value; %+v", src, src)
}
