package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("RENKOCHART_TEST_FLOAT", "12.5")
	t.Setenv("RENKOCHART_TEST_BAD_FLOAT", "abc")
	t.Setenv("RENKOCHART_TEST_BOOL", "true")
	t.Setenv("RENKOCHART_TEST_EMPTY", "")

	f, ok := Float64("RENKOCHART_TEST_FLOAT")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	f, ok = Float64("RENKOCHART_TEST_BAD_FLOAT", 10)
	assert.False(t, ok)
	assert.Equal(t, 10.0, f)

	var b bool
	assert.True(t, SetBool("RENKOCHART_TEST_BOOL", &b))
	assert.True(t, b)

	s := "keep"
	assert.False(t, SetString("RENKOCHART_TEST_EMPTY", &s))
	assert.False(t, SetString("RENKOCHART_TEST_UNDEFINED", &s))
	assert.Equal(t, "keep", s)

	n, ok := Int("RENKOCHART_TEST_UNDEFINED", 3)
	assert.False(t, ok)
	assert.Equal(t, 3, n)
}
