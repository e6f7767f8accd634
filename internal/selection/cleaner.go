package selection

import (
	"variant-matrix/internal/catalog"
	"variant-matrix/internal/common"
	"variant-matrix/internal/matrix"
)

// Drop is a selection entry removed by Clean.
type Drop struct {
	Attribute string     `json:"attribute"`
	Value     string     `json:"value"`
	Reason    DropReason `json:"reason"`

	// Suggestions holds compatible values Repair did not try, best first.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Clean returns the subset of sel that is pairwise self-consistent per m.
// Both sides of a conflicting pair are dropped; Repair is the place where one
// side gets kept. It never fails; the worst case is an empty selection.
func Clean(sel catalog.Selection, m *matrix.Matrix) catalog.Selection {
	out, _ := CleanWithReport(sel, m)
	return out
}

// CleanWithReport is Clean that also reports every removed entry, in
// attribute name order.
//
// Pass 1 drops values the matrix does not know. Pass 2 tests each remaining
// entry against every other entry that survived pass 1 and drops it on the
// first pair that never co-occurs. Both sides of a conflicting pair are
// dropped, so the result does not depend on iteration order.
func CleanWithReport(sel catalog.Selection, m *matrix.Matrix) (catalog.Selection, []Drop) {
	var drops []Drop

	names := common.SortedKeys(sel)
	known := make([]string, 0, len(names))

	for _, name := range names {
		if m.Has(name, sel[name]) {
			known = append(known, name)
			continue
		}

		drops = append(drops, Drop{Attribute: name, Value: sel[name], Reason: DropUnknownValue})
	}

	out := make(catalog.Selection, len(known))

	for _, name := range known {
		if consistent(m, sel, known, name) {
			out[name] = sel[name]
			continue
		}

		drops = append(drops, Drop{Attribute: name, Value: sel[name], Reason: DropIncompatible})
	}

	return out, drops
}

// consistent reports whether sel[name] co-occurs with the selected value of
// every other attribute in others.
func consistent(m *matrix.Matrix, sel catalog.Selection, others []string, name string) bool {
	for _, other := range others {
		if other == name {
			continue
		}

		if !m.CoOccurs(name, sel[name], other, sel[other]) {
			return false
		}
	}

	return true
}

// IsValidCombination reports whether Clean would keep every entry of sel.
// It is a pairwise check; see resolve.Exists for the exact one.
func IsValidCombination(sel catalog.Selection, m *matrix.Matrix) bool {
	_, drops := CleanWithReport(sel, m)
	return len(drops) == 0
}
