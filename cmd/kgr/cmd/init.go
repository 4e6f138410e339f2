package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbmrq/kgr/internal/config"
	"github.com/dbmrq/kgr/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kgr in the current directory",
	Long: `Initialize kgr in the current directory.

This command creates the .kgr directory and a default configuration:
  - .kgr/config.yaml    Default configuration
  - .kgr/logs/          Log files

Use --force to overwrite an existing configuration.

Examples:
  kgr init          # Initialize in current directory
  kgr init --force  # Force reinitialize, overwriting existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	configPath := config.DefaultConfigPath
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.WithSuggestion(errors.ErrConfig, "configuration already exists",
			"Use --force to overwrite "+configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to create .kgr directory")
	}
	if err := os.MkdirAll(config.DefaultLogDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to create log directory")
	}

	cfg := config.NewConfig()
	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	cmd.Println("Created " + configPath)
	cmd.Println("Created " + config.DefaultLogDir + "/")
	cmd.Println("")
	cmd.Println("kgr initialized successfully!")
	cmd.Println("Edit " + configPath + " to set your API key, or export KGR_API_KEY.")
	cmd.Println("Run 'kgr suggest \"some value\"' to try it out.")

	return nil
}
