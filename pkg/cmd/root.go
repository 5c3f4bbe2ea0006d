package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jaky1206/renko-chart-demo/pkg/config"
)

var userConfig *config.Config

var RootCmd = &cobra.Command{
	Use:   "renkochart",
	Short: "renko chart toolkit",
	Long:  "decompose price series into renko bricks and render the charts",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// flags are only parsed at this point
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}

		if debug || viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		dotenvFile, err := cmd.Flags().GetString("dotenv")
		if err != nil {
			return err
		}

		if err := config.LoadDotenv(dotenvFile, ".env.local", ".env"); err != nil {
			return err
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		if configFile == "" {
			configFile = viper.GetString("config")
		}

		userConfig, err = loadUserConfig(configFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("brick-size") {
			if userConfig.BrickSize, err = cmd.Flags().GetFloat64("brick-size"); err != nil {
				return err
			}
		}

		return userConfig.Validate()
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// loadUserConfig loads the given config file. Without one, renkochart.yaml is used when it
// exists, otherwise the default config. Environment variables override both.
func loadUserConfig(configFile string) (*config.Config, error) {
	var cfg *config.Config

	if len(configFile) == 0 {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			configFile = config.DefaultConfigFile
		}
	}

	if len(configFile) > 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}

		log.Debugf("loaded config file %s", configFile)
	} else {
		cfg = config.Default()
	}

	cfg.OverrideFromEnv()
	return cfg, nil
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file, defaults to renkochart.yaml when it exists")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")
	RootCmd.PersistentFlags().Float64("brick-size", 0, "override the brick size of the config")
}

func Execute() {
	viper.SetEnvPrefix("renkochart")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()

	environment := os.Getenv("RENKOCHART_ENV")
	switch environment {
	case "production", "prod":
		writer := &lumberjack.Logger{
			Filename:   path.Join("log", "renkochart.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     28, // days
		}

		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
