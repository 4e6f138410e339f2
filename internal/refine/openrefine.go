// Package refine writes the JSON sidecar files produced by kgr runs:
// OpenRefine operation histories, processed-value lists, and the
// ignore-value lists fed back into later runs.
package refine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Operation is a single OpenRefine operation history entry.
// The shape matches what OpenRefine's "Apply" dialog expects.
type Operation struct {
	Op           string       `json:"op"`
	EngineConfig EngineConfig `json:"engineConfig"`
	ColumnName   string       `json:"columnName"`
	Expression   string       `json:"expression"`
	Edits        []Edit       `json:"edits"`
	Description  string       `json:"description"`
}

// EngineConfig is the OpenRefine facet/engine configuration for an operation.
type EngineConfig struct {
	Facets []interface{} `json:"facets"`
	Mode   string        `json:"mode"`
}

// Edit is a single mass-edit value mapping.
type Edit struct {
	From      []string `json:"from"`
	FromBlank bool     `json:"fromBlank"`
	FromError bool     `json:"fromError"`
	To        string   `json:"to"`
}

// Operations builds an OpenRefine operation history from collected
// replacements: one core/mass-edit operation per replacement pair,
// ordered by source value for stable output.
func Operations(column string, replacements map[string]string) []Operation {
	fromValues := make([]string, 0, len(replacements))
	for from := range replacements {
		fromValues = append(fromValues, from)
	}
	sort.Strings(fromValues)

	ops := make([]Operation, 0, len(fromValues))
	for _, from := range fromValues {
		ops = append(ops, Operation{
			Op: "core/mass-edit",
			EngineConfig: EngineConfig{
				Facets: []interface{}{},
				Mode:   "row-based",
			},
			ColumnName: column,
			Expression: "value",
			Edits: []Edit{
				{
					From:      []string{from},
					FromBlank: false,
					FromError: false,
					To:        replacements[from],
				},
			},
			Description: fmt.Sprintf("Mass edit cells in column %s", column),
		})
	}
	return ops
}

// WriteOperations writes an OpenRefine operation history file for the
// collected replacements.
func WriteOperations(path, column string, replacements map[string]string) error {
	return writeJSON(path, Operations(column, replacements))
}

// WriteProcessedValues writes the list of examined values as a JSON array.
// The file can be fed back via --ignore-values-file to resume a run.
func WriteProcessedValues(path string, values []string) error {
	if values == nil {
		values = []string{}
	}
	return writeJSON(path, values)
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
