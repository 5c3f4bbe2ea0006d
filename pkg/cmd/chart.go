package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/jaky1206/renko-chart-demo/pkg/chart"
	"github.com/jaky1206/renko-chart-demo/pkg/cmd/cmdutil"
	"github.com/jaky1206/renko-chart-demo/pkg/renko"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

func init() {
	cmdutil.ChartFlags(RenkoCmd.Flags())
	cmdutil.ChartFlags(CandlestickCmd.Flags())
	cmdutil.ChartFlags(ScatterCmd.Flags())
	RootCmd.AddCommand(RenkoCmd)
	RootCmd.AddCommand(CandlestickCmd)
	RootCmd.AddCommand(ScatterCmd)
}

var RenkoCmd = &cobra.Command{
	Use:   "renko [dataset] [--brick-size=10] [--offset=0] [--window=10] [--volume] [-o renko.png]",
	Short: "render the renko chart of a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderChart(cmd, args, "renko", func(series *types.Series, opts chart.Options) (*gochart.Chart, error) {
			bricks, err := renko.Decompose(series.Rows, userConfig.BrickSize)
			if err != nil {
				return nil, err
			}

			log.Infof("%s: %s", series.Name, renko.Summarize(series.Rows, bricks, userConfig.BrickSize))
			return chart.RenkoChart(series, bricks, userConfig.BrickSize, opts)
		})
	},
}

var CandlestickCmd = &cobra.Command{
	Use:   "candlestick [dataset] [--offset=0] [--window=10] [--volume] [-o candlestick.png]",
	Short: "render the candlestick chart of a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderChart(cmd, args, "candlestick", chart.CandlestickChart)
	},
}

var ScatterCmd = &cobra.Command{
	Use:   "scatter [dataset] [--offset=0] [--window=10] [-o scatter.png]",
	Short: "render the scatter chart of the renko prices and the overlays of a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderChart(cmd, args, "scatter", chart.ScatterChart)
	},
}

type chartBuilder func(series *types.Series, opts chart.Options) (*gochart.Chart, error)

func renderChart(cmd *cobra.Command, args []string, kind string, build chartBuilder) error {
	ctx := cmd.Context()

	series, err := loadDataset(ctx, args)
	if err != nil {
		return err
	}

	opts, err := cmdutil.ChartOptions(cmd.Flags(), userConfig, series.Len())
	if err != nil {
		return err
	}

	opts.Title = series.Name

	graph, err := build(series, opts)
	if err != nil {
		return err
	}

	fileName, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if fileName == "" {
		fileName = fmt.Sprintf("%s.%s", kind, opts.Format)
	}

	if err := chart.Save(graph, fileName); err != nil {
		return err
	}

	log.Infof("%s chart of %s is saved to %s", kind, series.Name, fileName)
	return nil
}
