package catalog

import "slices"

// Attribute is one axis of variation and the values it takes.
type Attribute struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Domain is the ordered set of attributes appearing across a product's
// variants. Attribute and value order is first-seen order.
type Domain []Attribute

// DeriveDomain computes the attribute domain of variants. Specs with an empty
// name or value are skipped.
func DeriveDomain(variants []Variant) Domain {
	var dom Domain

	index := map[string]int{}

	for _, v := range variants {
		for _, s := range v.Specs {
			if s.Name == "" || s.Value == "" {
				continue
			}

			i, ok := index[s.Name]
			if !ok {
				i = len(dom)
				index[s.Name] = i
				dom = append(dom, Attribute{Name: s.Name})
			}

			if !slices.Contains(dom[i].Values, s.Value) {
				dom[i].Values = append(dom[i].Values, s.Value)
			}
		}
	}

	return dom
}

// Names returns the attribute names in domain order.
func (d Domain) Names() []string {
	out := make([]string, len(d))
	for i, a := range d {
		out[i] = a.Name
	}

	return out
}

// Lookup returns the attribute with the given name.
func (d Domain) Lookup(name string) (Attribute, bool) {
	for _, a := range d {
		if a.Name == name {
			return a, true
		}
	}

	return Attribute{}, false
}

// Covers reports whether sel has a value for every attribute in the domain.
func (d Domain) Covers(sel Selection) bool {
	for _, a := range d {
		if _, ok := sel[a.Name]; !ok {
			return false
		}
	}

	return true
}
