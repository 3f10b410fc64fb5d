package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PaletteFile is the YAML override format:
//
//	types:
//	  person:
//	    color: "#FF00FF"
//	    size: 8
type PaletteFile struct {
	Types map[string]Spec `yaml:"types"`
}

// LoadPaletteFile reads a YAML palette override and returns a Resolver that
// prefers the file's entries over the built-in table.
func LoadPaletteFile(path string) (*Resolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette file: %w", err)
	}

	var pf PaletteFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("palette file %s: %w", path, err)
	}

	for name, spec := range pf.Types {
		if spec.Size < 0 {
			return nil, fmt.Errorf("palette file %s: type %q has negative size", path, name)
		}
	}
	return WithOverrides(pf.Types), nil
}
