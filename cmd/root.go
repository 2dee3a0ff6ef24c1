package cmd

import (
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/config"
	"github.com/umer279/gymratting-fitness-tracker/internal/logging"
)

var (
	cfg *config.Config

	logFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "gymrat",
	Short:         "Workout tracker for the terminal: plans, live sessions, history and analytics",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if logFile != "" {
			c.Log.File = logFile
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}

		logging.Setup(logging.LoggerSetupParams{
			LogFileName: c.Log.File,
			LogLevel:    c.Log.Level,
		})
		cfg = c
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (rotated) instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
