package resolve

import (
	"variant-matrix/internal/catalog"
	"variant-matrix/internal/common"
	"variant-matrix/internal/matrix"
)

// Resolve returns the ids of variants carrying every (attribute, value) pair
// of sel. An empty selection resolves to nothing, as does any pair the matrix
// does not know. Ids keep catalog order.
func Resolve(sel catalog.Selection, m *matrix.Matrix) []string {
	if len(sel) == 0 {
		return nil
	}

	var result []string

	for i, name := range common.SortedKeys(sel) {
		items := m.Items(name, sel[name])
		if i == 0 {
			result = items
		} else {
			result = common.Intersect(result, items)
		}

		if len(result) == 0 {
			return nil
		}
	}

	return result
}

// One returns the single variant matching a complete selection. It reports
// false when sel leaves a domain attribute unset or when the catalog does not
// offer exactly one variant for the combination.
func One(sel catalog.Selection, m *matrix.Matrix, dom catalog.Domain) (string, bool) {
	if len(dom) == 0 || !dom.Covers(sel) {
		return "", false
	}

	ids := Resolve(sel, m)
	if len(ids) != 1 {
		return "", false
	}

	return ids[0], true
}

// Exists reports whether at least one variant carries every pair of sel.
func Exists(sel catalog.Selection, m *matrix.Matrix) bool {
	return len(Resolve(sel, m)) > 0
}
