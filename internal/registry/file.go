package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/mockgen/internal/domain"
)

// LoadFile builds a registry from a generators file. An empty path selects
// the default generator set.
func LoadFile(path string) (*GeneratorRegistry, error) {
	if path == "" {
		return FromConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var gf domain.GeneratorsFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(gf.Generators) == 0 {
		return nil, fmt.Errorf("%s: no generators listed", path)
	}
	return FromConfig(gf.Generators)
}
