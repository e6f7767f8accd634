package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML catalog file from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if len(c.Variants) == 0 {
		return nil, ErrNoVariants
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in ids and trims stray whitespace around names and values.
func applyDefaults(c *Catalog) {
	for i := range c.Variants {
		v := &c.Variants[i]
		if strings.TrimSpace(v.ID) == "" {
			v.ID = uuid.NewString()
		}

		for j := range v.Specs {
			s := &v.Specs[j]
			s.Name = strings.TrimSpace(s.Name)
			s.Value = strings.TrimSpace(s.Value)
		}
	}
}

// Marshal serializes a Catalog to YAML.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Catalog to the given path.
func WriteFile(c *Catalog, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}
