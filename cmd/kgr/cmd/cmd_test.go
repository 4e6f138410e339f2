package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dbmrq/kgr/internal/config"
	"github.com/dbmrq/kgr/internal/errors"
)

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "kgr",
		Short: "Replace values with suggestions from the Google Knowledge Graph",
	}
	root.PersistentFlags().StringP("api-key", "k", "", "Google Knowledge Graph API key")
	root.PersistentFlags().String("config", "", "Path to config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	suggest := &cobra.Command{
		Use:  "suggest REQUEST",
		Args: cobra.ExactArgs(1),
		RunE: runSuggest,
	}
	root.AddCommand(suggest)

	process := &cobra.Command{
		Use:  "process-file COLUMN CSV_FILE",
		Args: cobra.ExactArgs(2),
		RunE: runProcessFile,
	}
	process.Flags().BoolP("in-place", "i", false, "")
	process.Flags().StringP("output-file", "o", "", "")
	process.Flags().BoolP("save-openrefine", "s", false, "")
	process.Flags().StringP("openrefine-output-file", "f", "", "")
	process.Flags().BoolP("save-processed-values", "c", false, "")
	process.Flags().StringP("processed-values-output-file", "r", "", "")
	process.Flags().StringP("ignore-values-file", "g", "", "")
	process.Flags().BoolP("dry-run", "d", false, "")
	process.Flags().Bool("no-input", false, "")
	root.AddCommand(process)

	initC := &cobra.Command{
		Use:  "init",
		RunE: runInit,
	}
	initC.Flags().BoolP("force", "f", false, "")
	root.AddCommand(initC)

	versionC := &cobra.Command{
		Use:  "version",
		RunE: runVersion,
	}
	versionC.Flags().Bool("check", false, "")
	root.AddCommand(versionC)

	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func clearAPIKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KGR_API_KEY", "")
	t.Setenv("GKG_API_KEY", "")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if !strings.Contains(out, "kgr") {
		t.Errorf("output = %q, should mention kgr", out)
	}
	if !strings.Contains(out, "Commit") {
		t.Errorf("output = %q, should show commit", out)
	}
}

func TestInitCommand(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Chdir(t.TempDir())

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init command error = %v", err)
	}
	if !strings.Contains(out, "initialized successfully") {
		t.Errorf("output = %q, should confirm initialization", out)
	}

	if _, err := os.Stat(config.DefaultConfigPath); err != nil {
		t.Errorf("config file should exist: %v", err)
	}
}

func TestInitCommandExistingConfig(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Chdir(t.TempDir())

	if _, err := execute(t, "init"); err != nil {
		t.Fatalf("first init error = %v", err)
	}

	_, err := execute(t, "init")
	if !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("second init error = %v, want ErrConfig", err)
	}

	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestSuggestRequiresAPIKey(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Chdir(t.TempDir())

	_, err := execute(t, "suggest", "Mntn View")
	if !stderrors.Is(err, errors.ErrAuth) {
		t.Errorf("error = %v, want ErrAuth", err)
	}
}

func TestSuggestRequiresArgument(t *testing.T) {
	_, err := execute(t, "suggest")
	if err == nil {
		t.Error("suggest without argument should fail")
	}
}

func TestProcessFileMissingCSV(t *testing.T) {
	clearAPIKeyEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "process-file", "-k", "test-key", "city", filepath.Join(dir, "missing.csv"))
	if !stderrors.Is(err, errors.ErrCSV) {
		t.Errorf("error = %v, want ErrCSV", err)
	}
}

func TestProcessFileUnknownColumn(t *testing.T) {
	clearAPIKeyEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	csvPath := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(csvPath, []byte("city,count\nBerlin,3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "process-file", "-k", "test-key", "nope", csvPath)
	if !stderrors.Is(err, errors.ErrCSV) {
		t.Errorf("error = %v, want ErrCSV", err)
	}
}
