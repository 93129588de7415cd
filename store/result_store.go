// Package store persists decomposition results for downstream consumers.
// The engine itself owns no state; this is the caller-side surface that
// schedulers and editors read from.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"

	"github.com/planweave/planweave/internal/task"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// ResultStore reads and writes DecompositionResults as JSON or YAML files.
// The format is chosen by file extension (.json, .yaml, .yml). The afero
// filesystem abstraction keeps tests on an in-memory FS.
type ResultStore struct {
	fs afero.Fs
}

// NewResultStore creates a store over the given filesystem.
func NewResultStore(fs afero.Fs) *ResultStore {
	return &ResultStore{fs: fs}
}

// NewOsResultStore creates a store over the real filesystem.
func NewOsResultStore() *ResultStore {
	return NewResultStore(afero.NewOsFs())
}

// Save writes the result to path, creating parent directories as needed.
func (s *ResultStore) Save(path string, res *task.DecompositionResult) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(res, "", "  ")
	case formatYAML:
		data, err = yaml.Marshal(res)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads a result back from path.
func (s *ResultStore) Load(path string) (*task.DecompositionResult, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var res task.DecompositionResult
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &res)
	case formatYAML:
		err = yaml.Unmarshal(data, &res)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &res, nil
}

// formatForPath maps a file extension onto a serialization format.
func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported result file extension %q (use .json, .yaml, or .yml)", filepath.Ext(path))
	}
}
