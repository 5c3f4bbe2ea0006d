package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogErr(t *testing.T) {
	assert.False(t, LogErr(nil))
	assert.True(t, LogErr(errors.New("boom")))
	assert.True(t, LogErr(errors.New("boom"), "load %s", "NQ-2023-M8.csv"))
}

func TestTimeProfile(t *testing.T) {
	p := StartTimeProfile("render")

	var logged string
	p.StopAndLog(func(format string, args ...interface{}) {
		logged = format
	})

	assert.Contains(t, logged, "[profile] render")
	assert.False(t, p.EndTime.Before(p.StartTime))
}
