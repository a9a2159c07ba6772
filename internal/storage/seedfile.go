// Package storage reads the optional seed file that replaces the built-in
// starting tasks. Nothing is ever written back: session state lives only in
// memory.
package storage

import (
	"fmt"
	"os"

	"github.com/valter-silva-au/lista-tareas/internal/core"
	"gopkg.in/yaml.v3"
)

// SeedFile represents the top-level structure of a seed YAML file.
type SeedFile struct {
	Version string           `yaml:"version"`
	Tasks   []core.SeedEntry `yaml:"tasks"`
}

// LoadSeedFile reads and decodes the seed file at path. Unknown keys are
// rejected so typos surface instead of being silently dropped.
func LoadSeedFile(path string) ([]core.SeedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var data SeedFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	if len(data.Tasks) == 0 {
		return nil, fmt.Errorf("seed file %s has no tasks", path)
	}
	return data.Tasks, nil
}
