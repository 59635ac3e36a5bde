package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/dpselect/internal/config"
	"github.com/jask/dpselect/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	cfg config.Config
)

// newRootCmd builds the base command for the dpselect CLI. Binding the global flags
// resets them to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dpselect",
		Short: "Search and pick data products",
		Long: `dpselect searches a catalog of domains and data products.

It provides commands to:
  - Pick data products interactively with incremental search
  - Print one page of search results
  - Seed the sqlite catalog from a YAML file`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: DPSELECT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (env: DPSELECT_LOG_LEVEL)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// initializeGlobals loads config and sets up logging based on global flags.
func initializeGlobals(cmd *cobra.Command, _ []string) error {
	if flagConfig != "" {
		if err := os.Setenv("DPSELECT_CONFIG", flagConfig); err != nil {
			return err
		}
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
	if err := logging.Setup(c.Log.Level); err != nil {
		return err
	}
	cfg = c
	logging.Debug("dpselect started",
		"version", version,
		"backend", cfg.Catalog.Backend,
	)
	return nil
}
