package main

import (
	"fmt"
	"os"

	"firearm-inventory/internal/app"
	"firearm-inventory/internal/config"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

var cfg = config.FromEnv(os.Getenv)

var rootCmd = &cobra.Command{
	Use:          "firearm-inventory",
	Short:        "Track firearm inventory in a desktop window",
	Long:         `Record, list, filter and delete firearm entries (type, manufacturer, model). Records live in memory only.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := cfg.NewLogger()
		if err != nil {
			return err
		}

		fyneApp := fyneapp.NewWithID(config.AppID)
		application, err := app.NewApplication(fyneApp, cfg, log)
		if err != nil {
			return fmt.Errorf("initialization failed: %w", err)
		}

		return application.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.AppVersion)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error (env FIREARM_LOG_LEVEL)")
	flags.BoolVar(&cfg.JSONLogs, "json-logs", cfg.JSONLogs, "write logs as JSON lines (env FIREARM_JSON_LOGS)")
	flags.Float32Var(&cfg.WindowWidth, "width", cfg.WindowWidth, "initial window width")
	flags.Float32Var(&cfg.WindowHeight, "height", cfg.WindowHeight, "initial window height")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
