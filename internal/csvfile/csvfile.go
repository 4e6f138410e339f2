// Package csvfile reads and writes the CSV files kgr processes.
// A Table keeps the full row set in memory so replacements can be applied
// without re-reading the input.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dbmrq/kgr/internal/errors"
)

// Table is a CSV file loaded into memory.
type Table struct {
	// Path is where the table was read from.
	Path string
	// Headers is the first row of the file.
	Headers []string
	// Rows are all data rows, field-aligned with Headers.
	Rows [][]string
}

// Read loads a CSV file into a Table.
func Read(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CSVNotFound(path, err)
		}
		return nil, errors.CSVReadError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.CSVReadError(path, err)
	}
	if len(records) == 0 {
		return nil, errors.CSVReadError(path, fmt.Errorf("file has no header row"))
	}

	return &Table{
		Path:    path,
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// ColumnIndex returns the index of the named column.
// Column names are case-sensitive, as in the original CSV header.
func (t *Table) ColumnIndex(column string) (int, error) {
	for i, h := range t.Headers {
		if h == column {
			return i, nil
		}
	}
	return 0, errors.ColumnNotFound(column, t.Headers)
}

// UniqueValues returns the sorted distinct values of the named column.
// Empty values are included; callers decide whether to skip them.
func (t *Table) UniqueValues(column string) ([]string, error) {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		if idx < len(row) {
			seen[row[idx]] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// WriteWithReplacements writes the table to path, substituting values of the
// named column through the replacements map. Rows and other columns are
// preserved as read.
func (t *Table) WriteWithReplacements(path, column string, replacements map[string]string) error {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.CSVWriteError(path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Headers); err != nil {
		return errors.CSVWriteError(path, err)
	}

	for _, row := range t.Rows {
		out := row
		if idx < len(row) {
			if replacement, ok := replacements[row[idx]]; ok {
				out = make([]string, len(row))
				copy(out, row)
				out[idx] = replacement
			}
		}
		if err := writer.Write(out); err != nil {
			return errors.CSVWriteError(path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.CSVWriteError(path, err)
	}
	return nil
}

// OutputPath derives the default output path for a processed CSV file:
// "<stem>_out<ext>" next to the input, matching data.csv -> data_out.csv.
func OutputPath(csvPath string) string {
	ext := filepath.Ext(csvPath)
	stem := strings.TrimSuffix(filepath.Base(csvPath), ext)
	return filepath.Join(filepath.Dir(csvPath), stem+"_out"+ext)
}

// SidecarPath derives the default path for a sidecar file with the given
// suffix and extension: data.csv -> data_<suffix>.json.
func SidecarPath(csvPath, suffix string) string {
	ext := filepath.Ext(csvPath)
	stem := strings.TrimSuffix(filepath.Base(csvPath), ext)
	return filepath.Join(filepath.Dir(csvPath), stem+"_"+suffix+".json")
}
