package cmd

import (
	"context"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jaky1206/renko-chart-demo/pkg/cmd/cmdutil"
	"github.com/jaky1206/renko-chart-demo/pkg/loader"
	"github.com/jaky1206/renko-chart-demo/pkg/server"
	"github.com/jaky1206/renko-chart-demo/pkg/util"
)

func init() {
	ServeCmd.Flags().String("bind", "", "the address to listen on, defaults to server.bind of the config")
	ServeCmd.Flags().Int("week", 0, "navigate the week numbers of the database source, starting from this week")
	RootCmd.AddCommand(ServeCmd)
}

var ServeCmd = &cobra.Command{
	Use:   "serve [--bind=:8080] [--week=N]",
	Short: "serve the charts of the datasets with previous/next navigation",
	RunE: func(cmd *cobra.Command, args []string) error {
		bind, err := cmd.Flags().GetString("bind")
		if err != nil {
			return err
		}

		if bind == "" {
			bind = userConfig.Server.Bind
		}

		if cmd.Flags().Changed("week") {
			week, err := cmd.Flags().GetInt("week")
			if err != nil {
				return err
			}

			userConfig.Server.Week = week
			if err := userConfig.Validate(); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		source, closeSource, err := loader.NewSource(ctx, userConfig)
		if err != nil {
			return err
		}

		defer func() {
			util.LogErr(closeSource(), "can not close the data source")
		}()

		srv := server.New(userConfig, source)
		if err := srv.Init(ctx); err != nil {
			return err
		}

		go server.PingUntil(ctx, baseURL(bind), func() {
			log.Infof("web server is ready at %s", baseURL(bind))
		})

		go func() {
			cmdutil.WaitForSignal(ctx, syscall.SIGINT, syscall.SIGTERM)
			cancel()
		}()

		return srv.Run(ctx, bind)
	},
}

func baseURL(bind string) string {
	if len(bind) > 0 && bind[0] == ':' {
		return "http://localhost" + bind
	}

	return "http://" + bind
}
