package store

import (
	"encoding/json"
	"os"
)

// loadOrInit reads a JSON array file. A missing or unreadable file is
// replaced with an empty array, matching how the catalog and history files
// come into existence on first run.
func loadOrInit[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		var out []T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
	}
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		return nil, err
	}
	return nil, nil
}

// writeJSON rewrites the whole file. No incremental format: the files stay
// small and human-inspectable.
func writeJSON[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
