package refine

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dbmrq/kgr/internal/errors"
)

func TestOperations(t *testing.T) {
	replacements := map[string]string{
		"Mntn View": "Mountain View",
		"Brln":      "Berlin",
	}

	ops := Operations("city", replacements)

	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}

	// Ordered by source value
	if ops[0].Edits[0].From[0] != "Brln" {
		t.Errorf("expected ops sorted by source value, got %q first", ops[0].Edits[0].From[0])
	}

	op := ops[0]
	if op.Op != "core/mass-edit" {
		t.Errorf("expected op 'core/mass-edit', got %q", op.Op)
	}
	if op.EngineConfig.Mode != "row-based" {
		t.Errorf("expected row-based mode, got %q", op.EngineConfig.Mode)
	}
	if op.ColumnName != "city" {
		t.Errorf("expected column 'city', got %q", op.ColumnName)
	}
	if op.Expression != "value" {
		t.Errorf("expected expression 'value', got %q", op.Expression)
	}
	if op.Edits[0].To != "Berlin" {
		t.Errorf("expected edit to 'Berlin', got %q", op.Edits[0].To)
	}
	if op.Description != "Mass edit cells in column city" {
		t.Errorf("unexpected description %q", op.Description)
	}
}

func TestWriteOperations_JSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.json")

	err := WriteOperations(path, "city", map[string]string{"Mntn View": "Mountain View"})
	if err != nil {
		t.Fatalf("WriteOperations() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	// OpenRefine needs these exact keys
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(raw))
	}
	for _, key := range []string{"op", "engineConfig", "columnName", "expression", "edits", "description"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("operation missing key %q", key)
		}
	}

	edits := raw[0]["edits"].([]interface{})
	edit := edits[0].(map[string]interface{})
	if edit["fromBlank"] != false || edit["fromError"] != false {
		t.Error("edit flags should be present and false")
	}
}

func TestWriteProcessedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")

	if err := WriteProcessedValues(path, []string{"a", "b"}); err != nil {
		t.Fatalf("WriteProcessedValues() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(values, []string{"a", "b"}) {
		t.Errorf("unexpected values %v", values)
	}
}

func TestWriteProcessedValues_Nil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")

	if err := WriteProcessedValues(path, nil); err != nil {
		t.Fatalf("WriteProcessedValues() failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("nil values should serialize as empty array, got %s", data)
	}
}

func TestLoadIgnoreValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.json")
	if err := os.WriteFile(path, []byte(`["Berlin", "Paris"]`), 0644); err != nil {
		t.Fatalf("failed to write ignore file: %v", err)
	}

	ignore, err := LoadIgnoreValues(path)
	if err != nil {
		t.Fatalf("LoadIgnoreValues() failed: %v", err)
	}
	if len(ignore) != 2 {
		t.Errorf("expected 2 values, got %d", len(ignore))
	}
	if _, ok := ignore["Berlin"]; !ok {
		t.Error("expected 'Berlin' in ignore set")
	}
}

func TestLoadIgnoreValues_EmptyPath(t *testing.T) {
	ignore, err := LoadIgnoreValues("")
	if err != nil {
		t.Fatalf("LoadIgnoreValues(\"\") failed: %v", err)
	}
	if len(ignore) != 0 {
		t.Errorf("expected empty set, got %v", ignore)
	}
}

func TestLoadIgnoreValues_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.json")
	if err := os.WriteFile(path, []byte(`{"not": "an array"}`), 0644); err != nil {
		t.Fatalf("failed to write ignore file: %v", err)
	}

	_, err := LoadIgnoreValues(path)
	if err == nil {
		t.Fatal("expected error for malformed ignore file")
	}
	if !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}

	_, err = LoadIgnoreValues(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing ignore file")
	}
}
