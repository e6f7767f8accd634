package availability

import (
	"variant-matrix/internal/catalog"
	"variant-matrix/internal/matrix"
	"variant-matrix/internal/resolve"
)

// Flags describe one attribute value under the current selection.
type Flags struct {
	Available bool `json:"available"`
	Selected  bool `json:"selected"`
}

// Result maps attribute name to value to flags.
type Result map[string]map[string]Flags

// Calculate computes availability flags for every value of dom.
//
// Values of an attribute that is already selected stay available even if they
// no longer fit the other selections; cleaning the selection is the caller's
// job. A selected value the matrix does not know makes every candidate of
// every other attribute unavailable.
func Calculate(m *matrix.Matrix, sel catalog.Selection, dom catalog.Domain, opts ...Option) Result {
	o := gatherOptions(opts)
	res := make(Result, len(dom))

	for _, attr := range dom {
		flags := make(map[string]Flags, len(attr.Values))
		_, attrSelected := sel[attr.Name]

		for _, value := range attr.Values {
			f := Flags{Available: true, Selected: sel[attr.Name] == value}

			if len(sel) > 0 && !attrSelected {
				f.Available = candidateAvailable(m, sel, attr.Name, value, o.mode)
			}

			flags[value] = f
		}

		res[attr.Name] = flags
	}

	return res
}

func candidateAvailable(m *matrix.Matrix, sel catalog.Selection, name, value string, mode Mode) bool {
	if mode == ModeExact {
		return resolve.Exists(sel.With(name, value), m)
	}

	for selName, selValue := range sel {
		if selName == name {
			continue
		}

		if !m.CoOccurs(selName, selValue, name, value) {
			return false
		}
	}

	return true
}

// IsAvailable reports the Available flag of a value; unknown values are not
// available.
func (r Result) IsAvailable(name, value string) bool {
	return r[name][value].Available
}

// IsSelected reports the Selected flag of a value.
func (r Result) IsSelected(name, value string) bool {
	return r[name][value].Selected
}

// AvailableValues returns the available values of an attribute in domain order.
func (r Result) AvailableValues(dom catalog.Domain, name string) []string {
	attr, ok := dom.Lookup(name)
	if !ok {
		return nil
	}

	var out []string

	for _, v := range attr.Values {
		if r.IsAvailable(name, v) {
			out = append(out, v)
		}
	}

	return out
}
