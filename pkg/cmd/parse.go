package cmd

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jaky1206/renko-chart-demo/pkg/datasource/csvsource"
	"github.com/jaky1206/renko-chart-demo/pkg/indicator"
	"github.com/jaky1206/renko-chart-demo/pkg/loader"
)

func init() {
	ParseCmd.Flags().String("input-dir", "./data/custom-format/renko", "the directory of the csv files to parse when no file is given")
	ParseCmd.Flags().String("output-dir", "", "the output directory, defaults to files.dir of the config")
	ParseCmd.Flags().String("format", "renko", "the csv format of the input files: renko, orion or candlestick")
	ParseCmd.Flags().Int("window", 0, "the rolling window of the moving average and the median, 0 uses the config")
	RootCmd.AddCommand(ParseCmd)
}

var ParseCmd = &cobra.Command{
	Use:   "parse [file.csv...] [--input-dir=dir] [--output-dir=dir]",
	Short: "compute the moving average, the median and the volume regression of renko csv files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		inputDir, err := cmd.Flags().GetString("input-dir")
		if err != nil {
			return err
		}

		outputDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return err
		}

		if outputDir == "" {
			outputDir = userConfig.Files.Dir
		}

		rawFormat, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		format, err := csvsource.ParseFormat(rawFormat)
		if err != nil {
			return err
		}

		window, err := cmd.Flags().GetInt("window")
		if err != nil {
			return err
		}

		if window <= 0 {
			window = userConfig.Indicator.Window
		}

		source := &loader.FileSource{
			Dir:          inputDir,
			Paths:        args,
			Format:       format,
			PriorityYear: userConfig.Files.PriorityYear,
		}

		keys, err := source.List(ctx)
		if err != nil {
			return err
		}

		allSeries, err := loader.LoadAll(ctx, source, keys)
		if err != nil {
			return err
		}

		for i, series := range allSeries {
			if err := indicator.Enrich(series, window); err != nil {
				return err
			}

			output := filepath.Join(outputDir, filepath.Base(keys[i]))
			if err := csvsource.WriteSeries(output, series); err != nil {
				return err
			}

			log.Infof("parsed %s (%d rows) into %s", keys[i], series.Len(), output)
		}

		return nil
	},
}
