package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-matrix/internal/catalog"
	"variant-matrix/internal/diagnostic"
	"variant-matrix/internal/match"
	"variant-matrix/internal/matrix"
)

func TestApply_KeepsUserChoiceAndRepairsOthers(t *testing.T) {
	m := matrix.Build(laptops())

	out := Apply(catalog.Selection{"Color": "Silver", "Storage": "512GB"}, "Storage", "1TB", m)

	assert.Equal(t, catalog.Selection{"Color": "Space Gray", "Storage": "1TB"}, out.Selection)
	assert.Empty(t, out.Dropped)
	require.Len(t, out.Repaired, 1)
	assert.Equal(t, "Color", out.Repaired[0].Attribute)
	assert.Equal(t, "Silver", out.Repaired[0].From)
	assert.Equal(t, "Space Gray", out.Repaired[0].To)
	assert.True(t, out.Changed())
}

func TestApply_NoConflict(t *testing.T) {
	m := matrix.Build(laptops())

	out := Apply(catalog.Selection{"Color": "Space Gray"}, "Storage", "1TB", m)

	assert.Equal(t, catalog.Selection{"Color": "Space Gray", "Storage": "1TB"}, out.Selection)
	assert.False(t, out.Changed())
	assert.Zero(t, out.Diagnostics().Len())
}

func TestApply_ClearsAttribute(t *testing.T) {
	m := matrix.Build(laptops())

	out := Apply(catalog.Selection{"Color": "Silver", "Storage": "512GB"}, "Color", "", m)

	assert.Equal(t, catalog.Selection{"Storage": "512GB"}, out.Selection)
}

func TestApply_UnknownValueIsDropped(t *testing.T) {
	m := matrix.Build(laptops())

	out := Apply(catalog.Selection{"Storage": "512GB"}, "Color", "Gold", m)

	assert.Equal(t, catalog.Selection{"Storage": "512GB"}, out.Selection)
	assert.Equal(t, []Drop{{Attribute: "Color", Value: "Gold", Reason: DropUnknownValue}}, out.Dropped)
}

func TestRepair_PicksMostSimilarCompatibleValue(t *testing.T) {
	m := matrix.Build(shirts())

	// Size L only comes in Navy Blue / Regular.
	out := Apply(catalog.Selection{"Color": "Sky Blue", "Fit": "Regular", "Size": "M"}, "Size", "L", m)

	assert.Equal(t, catalog.Selection{"Color": "Navy Blue", "Fit": "Regular", "Size": "L"}, out.Selection)
	require.Len(t, out.Repaired, 1)
	assert.Equal(t, Replacement{Attribute: "Color", From: "Sky Blue", To: "Navy Blue", Score: out.Repaired[0].Score}, out.Repaired[0])
	assert.Greater(t, out.Repaired[0].Score, 0.0)
}

func TestRepair_StaleValueRepaired(t *testing.T) {
	m := matrix.Build(shirts())

	// "Navy" is stale client state; the closest known color is "Navy Blue".
	out := Repair(catalog.Selection{"Color": "Navy", "Size": "M"}, "Size", m)

	assert.Equal(t, catalog.Selection{"Color": "Navy Blue", "Size": "M"}, out.Selection)
	require.Len(t, out.Repaired, 1)
	assert.Equal(t, "Navy", out.Repaired[0].From)
}

func TestRepair_SingleAttempt(t *testing.T) {
	m := matrix.Build(laptops())
	sel := catalog.Selection{"Color": "Silver", "Storage": "1TB"}

	// The closest value to "Silver" is Silver itself, which still conflicts.
	out := Repair(sel, "Storage", m, WithSingleAttempt())

	assert.Equal(t, catalog.Selection{"Storage": "1TB"}, out.Selection)
	assert.Empty(t, out.Dropped)
	assert.Equal(t, []Drop{{
		Attribute:   "Color",
		Value:       "Silver",
		Reason:      DropIncompatible,
		Suggestions: []string{"Space Gray"},
	}}, out.Unrepaired)
	assert.Empty(t, out.Repaired)
	assert.True(t, out.Changed())

	diags := out.Diagnostics()
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnrepairedValue, diags.Warnings[0].Code)
	assert.Equal(t, "Color", diags.Warnings[0].Attribute)
	assert.Equal(t, []string{"Space Gray"}, diags.Warnings[0].Suggestions)
	assert.Equal(t,
		`Color: [unrepaired_value] value "Silver" was removed and no compatible replacement was found (did you mean Space Gray?)`,
		diags.Warnings[0].String())
}

func TestRepair_MinScore(t *testing.T) {
	m := matrix.Build(laptops())
	sel := catalog.Selection{"Color": "Silver", "Storage": "1TB"}

	// "Space Gray" shares no bigram with "Silver".
	out := Repair(sel, "Storage", m, WithMinScore(0.2))

	assert.Equal(t, catalog.Selection{"Storage": "1TB"}, out.Selection)
	require.Len(t, out.Unrepaired, 1)
	assert.Equal(t, []string{"Space Gray"}, out.Unrepaired[0].Suggestions)

	// The default minimum accepts a compatible value with a zero score.
	out = Repair(sel, "Storage", m)

	assert.Equal(t, catalog.Selection{"Color": "Space Gray", "Storage": "1TB"}, out.Selection)
	require.Len(t, out.Repaired, 1)
	assert.Zero(t, out.Repaired[0].Score)
}

func TestRepair_CustomComparator(t *testing.T) {
	m := matrix.Build(shirts())
	sel := catalog.Selection{"Color": "Sky Blue", "Size": "S"}

	// Prefer "Red" over anything else.
	preferRed := match.ComparatorFunc(func(_, b string) float64 {
		if b == "Red" {
			return 1
		}
		return 0
	})

	out := Repair(sel, "Size", m, WithComparator(preferRed))

	assert.Equal(t, catalog.Selection{"Color": "Red", "Size": "S"}, out.Selection)
}

func TestRepair_WithoutChangedAttribute(t *testing.T) {
	m := matrix.Build(laptops())

	// With no anchor both conflicting entries are dropped and then repaired
	// back one at a time; Color is processed first and keeps its value.
	out := Repair(catalog.Selection{"Color": "Silver", "Storage": "1TB"}, "", m)

	assert.True(t, IsValidCombination(out.Selection, m))
	assert.Equal(t, catalog.Selection{"Color": "Silver", "Storage": "512GB"}, out.Selection)
	assert.Equal(t, []Replacement{{Attribute: "Storage", From: "1TB", To: "512GB"}}, out.Repaired)
	assert.Empty(t, out.Unrepaired)
}

func TestRepair_RestoredValueIsNotAReplacement(t *testing.T) {
	m := matrix.Build([]catalog.Variant{
		{ID: "v1", Specs: catalog.SpecList{{Name: "A", Value: "a1"}, {Name: "B", Value: "b1"}, {Name: "C", Value: "c1"}}},
		{ID: "v2", Specs: catalog.SpecList{{Name: "A", Value: "a1"}, {Name: "B", Value: "b2"}, {Name: "C", Value: "c2"}}},
	})

	// B and C conflict, so Clean drops both. B fits again on its own and
	// is restored; C then has to move to c1.
	out := Repair(catalog.Selection{"A": "a1", "B": "b1", "C": "c2"}, "A", m)

	assert.Equal(t, catalog.Selection{"A": "a1", "B": "b1", "C": "c1"}, out.Selection)
	assert.Equal(t, []Replacement{{Attribute: "C", From: "c2", To: "c1"}}, out.Repaired)
	assert.Empty(t, out.Dropped)
	assert.Empty(t, out.Unrepaired)

	diags := out.Diagnostics()
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "C", diags.Infos[0].Attribute)
}

func TestRepair_ResultIsAlwaysConsistent(t *testing.T) {
	m := matrix.Build(shirts())

	for _, sel := range []catalog.Selection{
		{"Color": "Red", "Size": "L", "Fit": "Regular"},
		{"Color": "Navy Blue", "Size": "S", "Fit": "Slim"},
		{"Color": "Purple", "Size": "XXL", "Fit": "Loose"},
	} {
		for name := range sel {
			out := Repair(sel, name, m)
			assert.True(t, IsValidCombination(out.Selection, m), "sel=%v changed=%s -> %v", sel, name, out.Selection)
		}
	}
}
