package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for SpecList.
// Accepts either a sequence of {name, value, label} objects or a
// name: value mapping; mapping order is preserved.
func (s *SpecList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr []SpecValue

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	case yaml.MappingNode:
		out := make(SpecList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var name, value string

			if err := node.Content[i].Decode(&name); err != nil {
				return err
			}

			if err := node.Content[i+1].Decode(&value); err != nil {
				return fmt.Errorf("spec %q: %w", name, err)
			}

			out = append(out, SpecValue{Name: name, Value: value})
		}

		*s = out

		return nil

	default:
		return fmt.Errorf("expected spec list or mapping, got %v", node.Kind)
	}
}
