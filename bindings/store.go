package bindings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SidecarSuffix is appended to the shader path to name its binding file.
const SidecarSuffix = ".tweak.yaml"

// SidecarPath returns the binding file that belongs to shaderPath.
func SidecarPath(shaderPath string) string {
	return shaderPath + SidecarSuffix
}

// Load reads a binding table. A missing file yields an empty table.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings %s: %w", path, err)
	}
	t := Table{}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse bindings %s: %w", path, err)
	}
	for name, d := range t {
		if d == nil {
			delete(t, name)
		}
	}
	return t, nil
}

// Save writes the complete table to path, replacing any previous content.
func Save(path string, t Table) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode bindings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode bindings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write bindings %s: %w", path, err)
	}
	return nil
}
