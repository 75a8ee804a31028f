package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/schema"
	"github.com/kinggod/d3-components/tree"
)

// RenderFunc draws a chart from normalized records and resolved options.
// Drawing itself happens outside this module.
type RenderFunc func(records any, options tree.Tree) error

// Component is a chart type: the schema its data is normalized against and
// the option defaults layered between the global defaults and the caller's
// options.
type Component struct {
	ID       string
	Schema   *schema.Schema
	Defaults tree.Tree
	Render   RenderFunc
}

// componentFile is the YAML form of a Component.
type componentFile struct {
	ID       string         `yaml:"id"`
	Schema   *schema.Schema `yaml:"schema"`
	Defaults map[string]any `yaml:"defaults"`
}

// LoadComponent decodes a component from YAML. The result has no renderer.
func LoadComponent(data []byte) (*Component, error) {
	var f componentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse component YAML: %w", err)
	}

	if f.ID == "" {
		return nil, ErrMissingID
	}

	return &Component{
		ID:       f.ID,
		Schema:   f.Schema,
		Defaults: tree.Clone(f.Defaults),
	}, nil
}

// LoadComponentFile reads and decodes a component YAML file.
func LoadComponentFile(path string) (*Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read component file %s: %w", path, err)
	}

	return LoadComponent(data)
}

// Validate checks the component's id and schema.
func (c *Component) Validate() error {
	if c.ID == "" {
		return ErrMissingID
	}

	if c.Schema == nil {
		return nil
	}

	if err := schema.Validate(c.Schema); err != nil {
		return fmt.Errorf("component %q: %w", c.ID, err)
	}

	return nil
}
