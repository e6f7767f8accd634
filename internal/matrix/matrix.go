package matrix

import (
	"slices"

	"variant-matrix/internal/catalog"
	"variant-matrix/internal/common"
)

// Bucket holds what the matrix knows about one (attribute, value) pair.
type Bucket struct {
	// Items are the ids of variants carrying the pair, in catalog order.
	Items []string `json:"items"`
	// CoOccurs maps another attribute name to the values seen with the pair.
	CoOccurs map[string][]string `json:"coOccurs"`
}

// Matrix is the combination matrix of one product.
type Matrix struct {
	buckets map[string]map[string]*Bucket
	// attrs and values record first-seen order for deterministic iteration.
	attrs  []string
	values map[string][]string
}

// Build scans variants and returns their combination matrix.
// Specs with an empty attribute name or value contribute nothing.
func Build(variants []catalog.Variant) *Matrix {
	m := &Matrix{
		buckets: map[string]map[string]*Bucket{},
		values:  map[string][]string{},
	}

	for _, v := range variants {
		specs := usable(v.Specs)

		for i, s := range specs {
			b := m.ensure(s.Name, s.Value)
			b.Items = common.AppendUnique(b.Items, v.ID)

			for j, other := range specs {
				if i == j || other.Name == s.Name {
					continue
				}

				b.CoOccurs[other.Name] = common.AppendUnique(b.CoOccurs[other.Name], other.Value)
			}
		}
	}

	return m
}

func usable(specs catalog.SpecList) catalog.SpecList {
	out := make(catalog.SpecList, 0, len(specs))
	for _, s := range specs {
		if s.Name != "" && s.Value != "" {
			out = append(out, s)
		}
	}

	return out
}

func (m *Matrix) ensure(name, value string) *Bucket {
	byValue, ok := m.buckets[name]
	if !ok {
		byValue = map[string]*Bucket{}
		m.buckets[name] = byValue
		m.attrs = append(m.attrs, name)
	}

	b, ok := byValue[value]
	if !ok {
		b = &Bucket{CoOccurs: map[string][]string{}}
		byValue[value] = b
		m.values[name] = append(m.values[name], value)
	}

	return b
}

// Bucket returns the bucket of an (attribute, value) pair.
func (m *Matrix) Bucket(name, value string) (*Bucket, bool) {
	b, ok := m.buckets[name][value]
	return b, ok
}

// Has reports whether any variant carries the pair.
func (m *Matrix) Has(name, value string) bool {
	_, ok := m.Bucket(name, value)
	return ok
}

// Attributes returns every attribute name in first-seen order.
func (m *Matrix) Attributes() []string {
	return slices.Clone(m.attrs)
}

// Values returns the known values of an attribute in first-seen order.
// This is the set a dropped selection entry may be repaired from.
func (m *Matrix) Values(name string) []string {
	return slices.Clone(m.values[name])
}

// Items returns the ids of variants carrying the pair.
func (m *Matrix) Items(name, value string) []string {
	b, ok := m.Bucket(name, value)
	if !ok {
		return nil
	}

	return slices.Clone(b.Items)
}

// CoOccurs reports whether value of attribute name appears together with
// otherValue of attribute otherName on at least one variant. An unknown
// (name, value) pair co-occurs with nothing.
func (m *Matrix) CoOccurs(name, value, otherName, otherValue string) bool {
	b, ok := m.Bucket(name, value)
	if !ok {
		return false
	}

	return slices.Contains(b.CoOccurs[otherName], otherValue)
}

// Len returns the number of (attribute, value) buckets.
func (m *Matrix) Len() int {
	n := 0
	for _, byValue := range m.buckets {
		n += len(byValue)
	}

	return n
}

// Snapshot returns a deep copy of the buckets, keyed by attribute then value.
// It is meant for display and serialization.
func (m *Matrix) Snapshot() map[string]map[string]Bucket {
	out := make(map[string]map[string]Bucket, len(m.buckets))

	for name, byValue := range m.buckets {
		inner := make(map[string]Bucket, len(byValue))

		for value, b := range byValue {
			co := make(map[string][]string, len(b.CoOccurs))
			for k, vs := range b.CoOccurs {
				co[k] = slices.Clone(vs)
			}

			inner[value] = Bucket{Items: slices.Clone(b.Items), CoOccurs: co}
		}

		out[name] = inner
	}

	return out
}
