package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadDefs reads every *.yaml file in dir, strictly decodes each as a T,
// validates it, and returns the collected slice. kind appears in error
// messages only.
func loadDefs[T any](dir, kind string, validate func(*T) error) ([]*T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s dir %q: %w", kind, dir, err)
	}
	var defs []*T
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def T
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %s file %q: %w", kind, path, err)
		}
		if validate != nil {
			if err := validate(&def); err != nil {
				return nil, fmt.Errorf("invalid %s in %q: %w", kind, path, err)
			}
		}
		defs = append(defs, &def)
	}
	return defs, nil
}
