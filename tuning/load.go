package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSheet loads and decodes a yaml tuning sheet into out.
func LoadSheet(name string, out any) error {
	data, err := Load(name)
	if err != nil {
		return fmt.Errorf("tuning: read sheet %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("tuning: decode sheet %s: %w", name, err)
	}
	return nil
}
