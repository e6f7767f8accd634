package catalog

import (
	"fmt"

	"variant-matrix/internal/diagnostic"
)

// Validate checks the structural invariants of a variant list: non-empty
// unique ids, and at most one value per attribute on each variant.
// It never rejects the list; findings are reported as diagnostics and the
// engine tolerates every one of them.
func Validate(variants []Variant) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	seenIDs := map[string]struct{}{}

	for i, v := range variants {
		if v.ID == "" {
			res.AddError(diagnostic.CodeMissingVariantID,
				fmt.Sprintf("variant #%d has no id", i), "", "")
		} else if _, ok := seenIDs[v.ID]; ok {
			res.AddError(diagnostic.CodeDuplicateVariantID,
				fmt.Sprintf("variant id %q is used more than once", v.ID), v.ID, "")
		} else {
			seenIDs[v.ID] = struct{}{}
		}

		seenNames := map[string]string{}

		for _, s := range v.Specs {
			if s.Name == "" {
				res.AddWarning(diagnostic.CodeMissingAttributeName,
					fmt.Sprintf("value %q has no attribute name and is ignored", s.Value), v.ID, "")
				continue
			}

			if s.Value == "" {
				res.AddWarning(diagnostic.CodeEmptyValue, "attribute has an empty value", v.ID, s.Name)
			}

			if prev, ok := seenNames[s.Name]; ok {
				res.AddError(diagnostic.CodeDuplicateAttribute,
					fmt.Sprintf("attribute repeated with values %q and %q", prev, s.Value), v.ID, s.Name)
				continue
			}

			seenNames[s.Name] = s.Value
		}
	}

	return res
}
