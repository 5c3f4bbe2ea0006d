package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jaky1206/renko-chart-demo/pkg/service"
	"github.com/jaky1206/renko-chart-demo/pkg/style"
	"github.com/jaky1206/renko-chart-demo/pkg/util"
)

func init() {
	RootCmd.AddCommand(WeeksCmd)
}

var WeeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "list the weeks of the weekly table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db := service.NewDatabaseService(userConfig.Database.Driver, userConfig.Database.ConnectionString())
		if err := db.Connect(ctx); err != nil {
			return err
		}

		defer func() {
			util.LogErr(db.Close(), "can not close the database")
		}()

		weeks, err := service.NewWeeklyDataService(db.DB, userConfig.Database.Table).QueryWeeks(ctx)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(*style.NewDefaultTableStyle())
		t.AppendHeader(table.Row{"week no", "start", "end", "dataset"})
		for _, week := range weeks {
			t.AppendRow(table.Row{week.No, week.Start.Format(), week.End.Format(), week.String()})
		}
		t.AppendFooter(table.Row{"", "", "total", len(weeks)})
		t.Render()
		return nil
	},
}
