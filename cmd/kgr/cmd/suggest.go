package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/kgr/internal/kg"
)

// suggestCmd represents the suggest command.
var suggestCmd = &cobra.Command{
	Use:   "suggest REQUEST",
	Short: "Look up a single value in the Google Knowledge Graph",
	Long: `Look up a single value in the Google Knowledge Graph and print the
suggested replacement.

The suggestion is only printed when the best match clears the minimum
result score; otherwise the input is reported as unchanged.

Examples:
  kgr suggest "Mntn View"
  kgr suggest -k <api-key> "Alphbet Inc"`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

// runSuggest handles the suggest command.
func runSuggest(cmd *cobra.Command, args []string) error {
	request := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLogs := initLogging(cmd, cfg)
	defer closeLogs()

	client, err := kg.NewClient(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	suggestion, err := client.Suggest(cmd.Context(), request)
	if err != nil {
		return err
	}

	switch {
	case suggestion == request:
		cmd.Printf("Result from Google Knowledge Graph equals input: %q\n", request)
	case suggestion != "":
		cmd.Printf("Result from Google Knowledge Graph: %q\n", suggestion)
	default:
		cmd.Printf("No results in the Google Knowledge Graph for: %q\n", request)
	}

	return nil
}
