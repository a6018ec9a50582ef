package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/bogste/pixelfolio/shared/sequence"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// document is the YAML shape. It points at the globals so unmarshalling
// only overwrites the keys present in the file.
type document struct {
	Window   *Config          `yaml:"window"`
	Sequence *sequence.Config `yaml:"sequence"`
	Icon     *IconConfig      `yaml:"icon"`
	Section  *SectionConfig   `yaml:"section"`
}

func applyYAML(data []byte) error {
	doc := document{
		Window:   C,
		Sequence: &Sequence,
		Icon:     &Icon,
		Section:  &Section,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// LoadOverlay merges a user YAML file over the current configuration. An
// empty path is a no-op.
func LoadOverlay(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return applyYAML(data)
}
