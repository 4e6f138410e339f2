// Package cmd provides the CLI commands for kgr.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/kgr/internal/config"
	"github.com/dbmrq/kgr/internal/logging"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kgr",
	Short: "Replace values with suggestions from the Google Knowledge Graph",
	Long: `kgr queries the Google Knowledge Graph and suggests canonical
replacements for messy values.

Point it at a single value with "kgr suggest", or at a whole CSV column
with "kgr process-file" to review suggestions interactively and export
the accepted replacements as a new CSV or an OpenRefine operation
history.

An API key is required. Pass it with --api-key, set KGR_API_KEY (or the
legacy GKG_API_KEY), or put it in .kgr/config.yaml.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set version info here after main.go has set the variables.
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("kgr {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Google Knowledge Graph API key")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default .kgr/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
}

// loadConfig loads the configuration honoring the --config and --api-key
// flags. Flag values win over config file and environment values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	apiKey, _ := cmd.Flags().GetString("api-key")

	loader := config.NewLoader()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = loader.LoadConfig(configPath)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath)
	}
	if err != nil {
		return nil, err
	}

	if apiKey != "" {
		cfg.API.Key = apiKey
	}

	return cfg, nil
}

// initLogging initializes file logging under the project directory.
// Failure is non-fatal; kgr keeps working without a log file.
func initLogging(cmd *cobra.Command, cfg *config.Config) func() {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := logging.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logging.LevelDebug
	}

	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.Log.Dir,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     false, // Don't mix console output with the TUI
		JSONFormat:  cfg.Log.JSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}

	logging.Info("kgr starting", "version", Version, "verbose", verbose)
	return func() { _ = logging.CloseGlobal() }
}

// shortPath returns just the base name for display in the TUI header.
func shortPath(path string) string {
	return filepath.Base(path)
}
