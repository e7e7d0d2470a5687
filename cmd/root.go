package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kilianp07/cleanplan/app"
	"github.com/kilianp07/cleanplan/config"
	"github.com/kilianp07/cleanplan/core/scheduler"
	"github.com/kilianp07/cleanplan/infra/logger"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath   string
	schedPath string
	start     string
	months    int
	preview   int
)

var rootCmd = &cobra.Command{
	Use:          "cleanplan",
	Short:        "Vehicle cleaning planner and price simulator",
	Long:         "cleanplan generates the cleaning tasks of a shuttle and ambulift fleet, schedules them for a single agent and derives a recommended price per service.",
	SilenceUsage: true,
	RunE:         runSummary,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&schedPath, "scheduler", "", "scheduler settings file (YAML or JSON), replaces the scheduler section")
	rootCmd.PersistentFlags().StringVar(&start, "start", "", "planning start date, YYYY-MM-DD")
	rootCmd.PersistentFlags().IntVar(&months, "months", 0, "planning horizon in months")
	rootCmd.Flags().IntVar(&preview, "preview", 30, "number of planning rows to print")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads .env, the configuration file and flag overrides. A
// missing default config file falls back to built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	path := cfgPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if schedPath != "" {
		sc, err := scheduler.LoadConfig(schedPath)
		if err != nil {
			return nil, fmt.Errorf("load scheduler config: %w", err)
		}
		cfg.Scheduler = sc
	}
	if start != "" {
		cfg.Horizon.StartDate = start
	}
	if months != 0 {
		cfg.Horizon.Months = months
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

func newService(cmd *cobra.Command) (*app.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func runSummary(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	rep, err := svc.Run(cmd.Context())
	if err != nil {
		return err
	}
	return printReport(cmd.OutOrStdout(), rep, preview)
}
