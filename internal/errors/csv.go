// Package errors provides comprehensive error types for kgr.
// This file contains CSV and configuration file errors.
package errors

import (
	"fmt"
	"strings"
)

// CSV-related error constructors.

// CSVNotFound creates an error for a missing CSV file.
func CSVNotFound(path string, cause error) *KGRError {
	return &KGRError{
		Kind:    ErrCSV,
		Message: fmt.Sprintf("CSV file not found: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the file path. Relative paths are resolved against the current directory.",
	}
}

// CSVReadError creates an error for a malformed CSV file.
func CSVReadError(path string, cause error) *KGRError {
	return &KGRError{
		Kind:    ErrCSV,
		Message: fmt.Sprintf("failed to read CSV file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Check the file is valid CSV:
  1. Every row needs the same number of fields as the header
  2. Fields containing commas or newlines must be quoted`,
	}
}

// ColumnNotFound creates an error for a column missing from the CSV header.
func ColumnNotFound(column string, available []string) *KGRError {
	return &KGRError{
		Kind:    ErrCSV,
		Message: fmt.Sprintf("column %q not found in CSV header", column),
		Details: map[string]string{
			"column":    column,
			"available": strings.Join(available, ", "),
		},
		Suggestion: "Column names are case-sensitive. Pick one of the available columns.",
	}
}

// CSVWriteError creates an error for a failed CSV write.
func CSVWriteError(path string, cause error) *KGRError {
	return &KGRError{
		Kind:    ErrCSV,
		Message: fmt.Sprintf("failed to write CSV file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the destination directory exists and is writable.",
	}
}

// Configuration-related error constructors.

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *KGRError {
	return &KGRError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Validate with: yamllint .kgr/config.yaml`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *KGRError {
	suggestion := fmt.Sprintf("Fix the %q field in .kgr/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &KGRError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// IgnoreFileError creates an error for an unreadable ignore-values file.
func IgnoreFileError(path string, cause error) *KGRError {
	return &KGRError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to load ignore values from %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `The ignore-values file must be a JSON array of strings:
  ["Value One", "Value Two"]

A file written by --save-processed-values has the right shape.`,
	}
}
