package cmdutil

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaky1206/renko-chart-demo/pkg/chart"
	"github.com/jaky1206/renko-chart-demo/pkg/config"
)

func TestChartOptions(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		total int
		want  func(t *testing.T, opts chart.Options)
	}{
		{
			name:  "defaults show the tail",
			total: 25,
			want: func(t *testing.T, opts chart.Options) {
				assert.Equal(t, chart.Viewport{Offset: 15, Size: 10}, opts.Window)
				assert.Equal(t, chart.FormatPNG, opts.Format)
				assert.False(t, opts.ShowVolume)
				assert.Equal(t, 1280, opts.Width)
			},
		},
		{
			name:  "offset and window",
			args:  []string{"--offset=3", "--window=5", "--volume", "--trend"},
			total: 25,
			want: func(t *testing.T, opts chart.Options) {
				assert.Equal(t, chart.Viewport{Offset: 3, Size: 5}, opts.Window)
				assert.True(t, opts.ShowVolume)
				assert.True(t, opts.ShowTrendLine)
			},
		},
		{
			name:  "offset is clamped",
			args:  []string{"--offset=100"},
			total: 25,
			want: func(t *testing.T, opts chart.Options) {
				assert.Equal(t, chart.Viewport{Offset: 15, Size: 10}, opts.Window)
			},
		},
		{
			name:  "svg output",
			args:  []string{"-o", "out/renko.svg", "--width=640", "--height=480"},
			total: 3,
			want: func(t *testing.T, opts chart.Options) {
				assert.Equal(t, chart.FormatSVG, opts.Format)
				assert.Equal(t, chart.Viewport{Offset: 0, Size: 3}, opts.Window)
				assert.Equal(t, 640, opts.Width)
				assert.Equal(t, 480, opts.Height)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			ChartFlags(flags)
			require.NoError(t, flags.Parse(tt.args))

			opts, err := ChartOptions(flags, config.Default(), tt.total)
			require.NoError(t, err)
			tt.want(t, opts)
		})
	}
}

func TestChartOptions_UnsupportedFormat(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	ChartFlags(flags)
	require.NoError(t, flags.Parse([]string{"-o", "renko.gif"}))

	_, err := ChartOptions(flags, config.Default(), 10)
	assert.Error(t, err)
}
