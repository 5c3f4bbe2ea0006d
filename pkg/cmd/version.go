package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaky1206/renko-chart-demo/pkg/version"
)

func init() {
	RootCmd.AddCommand(VersionCmd)
}

var VersionCmd = &cobra.Command{
	Use:          "version",
	Short:        "show version name",
	SilenceUsage: true,

	// version does not need the config
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version, version.BuildTime)
	},
}
