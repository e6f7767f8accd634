package catalog

import (
	"maps"
)

// SpecValue is one defining specification value of a variant.
type SpecValue struct {
	// Name is the attribute name, e.g. "Color".
	Name string `yaml:"name" json:"name"`
	// Value is the attribute value, e.g. "Space Gray".
	Value string `yaml:"value" json:"value"`
	// Label is an optional display label. It is never used for matching.
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// SpecList is the ordered list of specification values on a variant.
type SpecList []SpecValue

// Variant is one purchasable combination of attribute values.
type Variant struct {
	ID    string   `yaml:"id" json:"id"`
	Specs SpecList `yaml:"specs" json:"specs"`
}

// Catalog is a product and its variants.
type Catalog struct {
	Product  string    `yaml:"product" json:"product"`
	Variants []Variant `yaml:"variants" json:"variants"`
}

// Selection maps an attribute name to the single chosen value.
// The engine never retains a Selection; every operation returns a new one.
type Selection map[string]string

// Clone returns a copy of s. A nil selection clones to an empty one.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	maps.Copy(out, s)

	return out
}

// With returns a copy of s with name set to value. An empty value removes
// the entry.
func (s Selection) With(name, value string) Selection {
	out := s.Clone()
	if value == "" {
		delete(out, name)
	} else {
		out[name] = value
	}

	return out
}
