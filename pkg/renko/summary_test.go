package renko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	input := rows([2]float64{100, 123}, [2]float64{123, 123}, [2]float64{123, 100})

	bricks, err := Decompose(input, 10)
	require.NoError(t, err)

	s := Summarize(input, bricks, 10)
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 1, s.FlatRows)
	assert.Equal(t, len(bricks), s.Bricks)
	assert.Equal(t, 3, s.Green)
	assert.Equal(t, s.Bricks-3, s.Red)
	assert.Equal(t, 1, s.Reversals)
	assert.Equal(t, 0.0, s.NetMove)
	assert.Equal(t, 100.0, s.Low)
	assert.Equal(t, 123.0, s.High)
	assert.Contains(t, s.String(), "3 rows (1 flat)")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, 10)
	assert.Equal(t, Summary{BrickSize: 10}, s)
}
