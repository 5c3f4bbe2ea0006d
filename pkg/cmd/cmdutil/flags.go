package cmdutil

import (
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/jaky1206/renko-chart-demo/pkg/chart"
	"github.com/jaky1206/renko-chart-demo/pkg/config"
)

// ChartFlags defines the flags of the chart commands
func ChartFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "", "the output image file, the extension selects png or svg")
	flags.Int("offset", -1, "the first visible slot, -1 shows the tail of the series")
	flags.Int("window", 0, "the number of visible slots, 0 uses the config")
	flags.Bool("volume", false, "draw the volume bars")
	flags.Bool("legend", false, "draw the legend")
	flags.Bool("trend", false, "draw the trend line of the close price")
	flags.Int("width", 0, "image width, 0 uses the config")
	flags.Int("height", 0, "image height, 0 uses the config")
}

// ChartOptions builds the chart options from the config and the chart flags.
func ChartOptions(flags *pflag.FlagSet, cfg *config.Config, total int) (chart.Options, error) {
	opts := chart.DefaultOptions()
	opts.Width = cfg.Chart.Width
	opts.Height = cfg.Chart.Height
	opts.ShowLegend = cfg.Chart.ShowLegend
	opts.ShowVolume = cfg.Chart.ShowVolume

	window := cfg.Chart.Window
	if v, err := flags.GetInt("window"); err != nil {
		return opts, err
	} else if v > 0 {
		window = v
	}

	offset, err := flags.GetInt("offset")
	if err != nil {
		return opts, err
	}

	if offset < 0 {
		opts.Window = chart.InitialViewport(total, window)
	} else {
		opts.Window = chart.Viewport{Offset: offset, Size: window}.Clamp(total)
	}

	if flags.Changed("volume") {
		if opts.ShowVolume, err = flags.GetBool("volume"); err != nil {
			return opts, err
		}
	}

	if flags.Changed("legend") {
		if opts.ShowLegend, err = flags.GetBool("legend"); err != nil {
			return opts, err
		}
	}

	if opts.ShowTrendLine, err = flags.GetBool("trend"); err != nil {
		return opts, err
	}

	if v, _ := flags.GetInt("width"); v > 0 {
		opts.Width = v
	}

	if v, _ := flags.GetInt("height"); v > 0 {
		opts.Height = v
	}

	output, err := flags.GetString("output")
	if err != nil {
		return opts, err
	}

	if opts.Format, err = chart.ParseFormat(filepath.Ext(output)); err != nil {
		return opts, err
	}

	return opts, nil
}
