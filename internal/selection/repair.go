package selection

import (
	"fmt"
	"slices"

	"variant-matrix/internal/catalog"
	"variant-matrix/internal/diagnostic"
	"variant-matrix/internal/match"
	"variant-matrix/internal/matrix"
)

// Replacement records a dropped value that Repair substituted.
type Replacement struct {
	Attribute string  `json:"attribute"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Score     float64 `json:"score"`
}

// Outcome is the result of Repair or Apply.
type Outcome struct {
	// Selection is the cleaned, possibly repaired selection.
	Selection catalog.Selection `json:"selection"`
	// Dropped lists entries removed without a repair attempt: the user's own
	// change when the matrix does not know it, or anything Clean removed.
	Dropped []Drop `json:"dropped,omitempty"`
	// Unrepaired lists entries Repair tried and failed to replace.
	Unrepaired []Drop `json:"unrepaired,omitempty"`
	// Repaired lists entries replaced by a different compatible value.
	Repaired []Replacement `json:"repaired,omitempty"`
}

// Changed reports whether Repair altered anything besides the user's change.
func (o Outcome) Changed() bool {
	return len(o.Dropped) > 0 || len(o.Unrepaired) > 0 || len(o.Repaired) > 0
}

// Diagnostics renders the outcome for display.
func (o Outcome) Diagnostics() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, d := range o.Dropped {
		res.AddWarning(d.Reason.Code(),
			fmt.Sprintf("value %q was removed from the selection", d.Value), "", d.Attribute)
	}

	for _, d := range o.Unrepaired {
		res.Warnings = append(res.Warnings, diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        diagnostic.CodeUnrepairedValue,
			Message:     fmt.Sprintf("value %q was removed and no compatible replacement was found", d.Value),
			Attribute:   d.Attribute,
			Suggestions: d.Suggestions,
		})
	}

	for _, r := range o.Repaired {
		res.AddInfo(diagnostic.CodeRepairedValue,
			fmt.Sprintf("value %q was replaced with %q", r.From, r.To), "", r.Attribute)
	}

	return res
}

// Repair cleans sel and tries to re-populate every dropped attribute except
// changed, the attribute the user just set.
//
// The user's latest choice wins: if changed is known to the matrix but
// conflicts with other entries it is kept and the conflicting entries are
// dropped instead. Replacement candidates are the matrix values of the
// dropped attribute, ranked by similarity to the dropped value; a candidate
// is accepted only if the selection stays free of drops under Clean. When the
// accepted candidate is the dropped value itself the entry is restored and no
// Replacement is recorded.
func Repair(sel catalog.Selection, changed string, m *matrix.Matrix, opts ...RepairOption) Outcome {
	o := gatherRepairOptions(opts)

	cleaned, drops := CleanWithReport(sel, m)

	if i := slices.IndexFunc(drops, func(d Drop) bool {
		return d.Attribute == changed && d.Reason == DropIncompatible
	}); i >= 0 {
		// Survivors of pass 2 agree with every known entry, including changed.
		cleaned[changed] = sel[changed]
		drops = slices.Delete(drops, i, i+1)
	}

	out := Outcome{Selection: cleaned}

	for _, d := range drops {
		if d.Attribute == changed {
			out.Dropped = append(out.Dropped, d)
			continue
		}

		cand, suggestions, ok := replace(out.Selection, d, m, o)
		if !ok {
			d.Suggestions = suggestions
			out.Unrepaired = append(out.Unrepaired, d)
			continue
		}

		out.Selection = out.Selection.With(d.Attribute, cand.Value)
		if cand.Value == d.Value {
			continue
		}

		out.Repaired = append(out.Repaired, Replacement{
			Attribute: d.Attribute,
			From:      d.Value,
			To:        cand.Value,
			Score:     cand.Score,
		})
	}

	return out
}

// replace returns the first acceptable candidate for d. When none is
// accepted it returns, best first, the compatible values the options kept it
// from trying.
func replace(sel catalog.Selection, d Drop, m *matrix.Matrix, o repairOptions) (match.Candidate, []string, bool) {
	ranked := match.Rank(o.comparator, d.Value, m.Values(d.Attribute))

	tries := ranked.AboveThreshold(o.minScore)
	if o.singleAttempt {
		tries = tries.Top(1)
	}

	for _, cand := range tries {
		if IsValidCombination(sel.With(d.Attribute, cand.Value), m) {
			return cand, nil, true
		}
	}

	var suggestions []string

	// tries is a prefix of ranked.
	for _, v := range ranked[len(tries):].Values() {
		if IsValidCombination(sel.With(d.Attribute, v), m) {
			suggestions = append(suggestions, v)
		}
	}

	return match.Candidate{}, suggestions, false
}

// Apply sets name to value on a copy of sel, as when a user clicks an option,
// and repairs the result. An empty value clears the attribute.
func Apply(sel catalog.Selection, name, value string, m *matrix.Matrix, opts ...RepairOption) Outcome {
	return Repair(sel.With(name, value), name, m, opts...)
}
