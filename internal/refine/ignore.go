package refine

import (
	"encoding/json"
	"os"

	"github.com/dbmrq/kgr/internal/errors"
)

// LoadIgnoreValues reads a JSON array of values to skip during processing.
// An empty path yields an empty set.
func LoadIgnoreValues(path string) (map[string]struct{}, error) {
	ignore := make(map[string]struct{})
	if path == "" {
		return ignore, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IgnoreFileError(path, err)
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.IgnoreFileError(path, err)
	}

	for _, v := range values {
		ignore[v] = struct{}{}
	}
	return ignore, nil
}
