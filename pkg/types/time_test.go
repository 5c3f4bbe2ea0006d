package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		give    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "date time",
			give: "2024-08-05 09:30:00",
			want: time.Date(2024, 8, 5, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "time only",
			give: " 09:31:15 ",
			want: time.Date(0, 1, 1, 9, 31, 15, 0, time.UTC),
		},
		{
			name: "us date",
			give: "08/05/2024 16:00",
			want: time.Date(2024, 8, 5, 16, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			give:    "next tuesday",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.give)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			if assert.NoError(t, err) {
				assert.True(t, got.Equal(tt.want), "got %s", got)
			}
		})
	}
}

func TestTime_Format(t *testing.T) {
	assert.Equal(t, "09:30:00", MustParseTime("09:30:00").Format())
	assert.Equal(t, "2024-08-05 09:30:00", MustParseTime("2024-08-05T09:30:00").Format())
	assert.Equal(t, "", Time{}.Format())
}

func TestTime_Scan(t *testing.T) {
	var tt Time
	now := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.NoError(t, tt.Scan(now))
	assert.True(t, tt.Equal(now))

	assert.NoError(t, tt.Scan([]byte("2023-01-02 03:04:05")))
	assert.True(t, tt.Equal(now))

	assert.NoError(t, tt.Scan(nil))
	assert.True(t, tt.IsZero())

	assert.Error(t, tt.Scan(42))
}
