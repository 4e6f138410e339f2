package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbmrq/kgr/internal/csvfile"
	"github.com/dbmrq/kgr/internal/engine"
	kgrerrors "github.com/dbmrq/kgr/internal/errors"
	"github.com/dbmrq/kgr/internal/kg"
	"github.com/dbmrq/kgr/internal/logging"
	"github.com/dbmrq/kgr/internal/refine"
	"github.com/dbmrq/kgr/internal/tui"
)

// processCmd represents the process-file command.
var processCmd = &cobra.Command{
	Use:   "process-file COLUMN CSV_FILE",
	Short: "Review Knowledge Graph suggestions for a CSV column",
	Long: `Review Knowledge Graph suggestions for every unique value of a CSV
column and collect the replacements you accept.

Each suggestion is shown in an interactive prompt; the default answer
is No. Accepted replacements are written to a new CSV file (or back
into the original with --in-place), and can additionally be exported
as an OpenRefine operation history.

Aborting with q or ctrl-c keeps everything collected so far, so long
runs can be resumed later with an ignore file built from the processed
values.

Examples:
  kgr process-file city data.csv
  kgr process-file city data.csv --in-place
  kgr process-file city data.csv -s -c        # also save OpenRefine + processed values
  kgr process-file city data.csv -g done.json # skip already-reviewed values
  kgr process-file city data.csv -d -s        # dry run, only the OpenRefine export`,
	Args: cobra.ExactArgs(2),
	RunE: runProcessFile,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolP("in-place", "i", false, "Replace CSV file values in-place (default: false)")
	processCmd.Flags().StringP("output-file", "o", "", "Output CSV file path (ignored with --in-place; default <stem>_out.<ext>)")
	processCmd.Flags().BoolP("save-openrefine", "s", false, "Save replacements as OpenRefine operation history file (default: false)")
	processCmd.Flags().StringP("openrefine-output-file", "f", "", "OpenRefine operation history file path (default <stem>_openrefine.json)")
	processCmd.Flags().BoolP("save-processed-values", "c", false, "Store processed values in file (default: false)")
	processCmd.Flags().StringP("processed-values-output-file", "r", "", "Processed values file path (default <stem>_processed.json)")
	processCmd.Flags().StringP("ignore-values-file", "g", "", "Load values to be ignored from file")
	processCmd.Flags().BoolP("dry-run", "d", false, "Skip replacing and saving CSV file values (default: false)")
	processCmd.Flags().Bool("no-input", false, "Accept every suggestion without prompting (no TUI)")
}

// runProcessFile is the main entry point for the process-file command.
func runProcessFile(cmd *cobra.Command, args []string) error {
	column := args[0]
	csvPath := args[1]

	inPlace, _ := cmd.Flags().GetBool("in-place")
	outputPath, _ := cmd.Flags().GetString("output-file")
	saveOpenRefine, _ := cmd.Flags().GetBool("save-openrefine")
	openRefinePath, _ := cmd.Flags().GetString("openrefine-output-file")
	saveProcessed, _ := cmd.Flags().GetBool("save-processed-values")
	processedPath, _ := cmd.Flags().GetString("processed-values-output-file")
	ignorePath, _ := cmd.Flags().GetString("ignore-values-file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noInput, _ := cmd.Flags().GetBool("no-input")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLogs := initLogging(cmd, cfg)
	defer closeLogs()

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := csvfile.Read(csvPath)
	if err != nil {
		return err
	}
	uniqueValues, err := table.UniqueValues(column)
	if err != nil {
		return err
	}
	logging.Info("read CSV file", "path", csvPath, "unique_values", len(uniqueValues))

	ignoreValues, err := refine.LoadIgnoreValues(ignorePath)
	if err != nil {
		return err
	}

	client, err := kg.NewClient(ctx, cfg)
	if err != nil {
		return err
	}

	opts := engine.DefaultOptions()
	opts.BreakerLimit = cfg.Breaker.Limit
	opts.BreakerPause = cfg.Breaker.Pause

	var result *engine.Result
	var runErr error
	if noInput {
		opts.Unattended = true
		eng := engine.New(client, acceptAllPrompter{}, opts)
		result, runErr = eng.Run(ctx, uniqueValues, ignoreValues)
	} else {
		runner := tui.NewRunner(shortPath(csvPath), column)
		runner.ConfigureEngine(opts)
		eng := engine.New(client, runner, opts)
		runErr = runner.Run(ctx, func(runCtx context.Context) error {
			var err error
			result, err = eng.Run(runCtx, uniqueValues, ignoreValues)
			return err
		})
	}

	// An aborted or failed run still yields a partial result. Keep going
	// so the collected replacements are not lost.
	if runErr != nil {
		if errors.Is(runErr, kgrerrors.ErrAborted) {
			cmd.Println("Aborted; saving progress so far.")
		} else {
			cmd.PrintErrf("Run stopped early: %v\n", runErr)
		}
	}
	if result == nil {
		return runErr
	}

	cmd.Printf("Offered %d suggestions\n", result.Offered)
	cmd.Printf("Collected %d value replacement pairs\n", len(result.Replacements))

	if saveProcessed {
		path := processedPath
		if path == "" {
			path = csvfile.SidecarPath(csvPath, "processed")
			logging.Info("no processed values file path provided", "using", path)
		}
		if err := refine.WriteProcessedValues(path, result.Processed); err != nil {
			return err
		}
		cmd.Printf("Saved processed values to %s\n", path)
	}

	if saveOpenRefine {
		path := openRefinePath
		if path == "" {
			path = csvfile.SidecarPath(csvPath, "openrefine")
			logging.Info("no OpenRefine file path provided", "using", path)
		}
		if err := refine.WriteOperations(path, column, result.Replacements); err != nil {
			return err
		}
		cmd.Printf("Saved OpenRefine operation history to %s\n", path)
	}

	if dryRun {
		return nil
	}

	outPath := outputPath
	if inPlace {
		outPath = csvPath
	} else if outPath == "" {
		outPath = csvfile.OutputPath(csvPath)
	}
	if err := table.WriteWithReplacements(outPath, column, result.Replacements); err != nil {
		return err
	}
	cmd.Printf("Wrote file with new values to %s\n", outPath)

	return nil
}

// acceptAllPrompter accepts every suggestion. It backs --no-input runs
// where the review happens later in OpenRefine.
type acceptAllPrompter struct{}

func (acceptAllPrompter) ConfirmReplace(ctx context.Context, _, _ int, _, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}
