package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSeed reads a JSON array of records from path. An empty path yields
// no records so the service can start with an empty collection.
func LoadSeed[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return items, nil
}
