package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/jaky1206/renko-chart-demo/pkg/renko"
	"github.com/jaky1206/renko-chart-demo/pkg/style"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

func init() {
	BricksCmd.Flags().Bool("emoji", false, "print the brick colors as emoji")
	BricksCmd.Flags().Bool("summary-only", false, "only print the summary")
	RootCmd.AddCommand(BricksCmd)
}

var BricksCmd = &cobra.Command{
	Use:   "bricks [dataset] [--brick-size=10]",
	Short: "print the renko bricks of a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := loadDataset(cmd.Context(), args)
		if err != nil {
			return err
		}

		bricks, err := renko.Decompose(series.Rows, userConfig.BrickSize)
		if err != nil {
			return err
		}

		summaryOnly, err := cmd.Flags().GetBool("summary-only")
		if err != nil {
			return err
		}

		withEmoji, err := cmd.Flags().GetBool("emoji")
		if err != nil {
			return err
		}

		if !summaryOnly {
			printBricks(bricks, withEmoji)
		}

		printSummary(series.Name, renko.Summarize(series.Rows, bricks, userConfig.BrickSize))
		return nil
	},
}

func printBricks(bricks types.BrickSlice, withEmoji bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.AppendHeader(table.Row{"#", "slot", "label", "open", "close", "height", "color"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for i, b := range bricks {
		c := b.Color.String()
		if withEmoji {
			c = style.BrickEmoji(b.Color)
		}

		t.AppendRow(table.Row{
			i,
			b.Index,
			b.Label,
			types.FormatPrice(b.Open),
			types.FormatPrice(b.Close),
			style.SignString(b.Height()),
			c,
		})
	}

	t.SetRowPainter(func(row table.Row) text.Colors {
		if len(row) == 0 {
			return nil
		}

		if i, ok := row[0].(int); ok && i < len(bricks) {
			return style.BrickTextColors(bricks[i].Color)
		}

		return nil
	})

	t.Render()
}

func printSummary(name string, s renko.Summary) {
	color.Green("%s RENKO SUMMARY", name)
	color.Green("===============================================")
	fmt.Printf("BRICK SIZE: %s\n", types.FormatPrice(s.BrickSize))
	fmt.Printf("ROWS: %d (%d FLAT)\n", s.Rows, s.FlatRows)
	fmt.Printf("BRICKS: %d (%d PARTIAL)\n", s.Bricks, s.Partial)
	color.Green("GREEN BRICKS: %d", s.Green)
	color.Red("RED BRICKS: %d", s.Red)
	fmt.Printf("REVERSALS: %d\n", s.Reversals)
	fmt.Printf("PRICE RANGE: %s - %s\n", types.FormatPrice(s.Low), types.FormatPrice(s.High))

	if s.NetMove >= 0 {
		color.Green("NET MOVE: %s", style.SignString(s.NetMove))
	} else {
		color.Red("NET MOVE: %s", style.SignString(s.NetMove))
	}
}
