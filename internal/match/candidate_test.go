package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []string
		want       string
		wantOK     bool
	}{
		{"substring wins", "Gray", []string{"Space Gray", "Silver", "Gold"}, "Space Gray", true},
		{"empty candidates", "Any", []string{}, "", false},
		{"nil candidates", "Any", nil, "", false},
		{"sole candidate", "Gray", []string{"Gold"}, "Gold", true},
		{"tie keeps input order", "Blue", []string{"Red", "Green"}, "Red", true},
		{"storage sizes", "512 GB", []string{"256GB", "512GB", "1TB"}, "512GB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.target, tt.candidates)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosestWith_CustomComparator(t *testing.T) {
	// Prefer the longest candidate regardless of the target.
	byLength := ComparatorFunc(func(_, b string) float64 { return float64(len(b)) })

	got, ok := ClosestWith(byLength, "x", []string{"ab", "abcd", "abc"})
	require.True(t, ok)
	assert.Equal(t, "abcd", got)
}

func TestRank(t *testing.T) {
	list := Rank(nil, "Gray", []string{"Gold", "Space Gray", "Graphite", "Silver"})
	require.Len(t, list, 4)

	assert.Equal(t, "Space Gray", list[0].Value)
	assert.Equal(t, "Graphite", list[1].Value)
	// Zero scores keep input order.
	assert.Equal(t, []string{"Gold", "Silver"}, list.Values()[2:])
	assert.Equal(t, 0, list[2].Index)
	assert.Equal(t, 3, list[3].Index)
}

func TestRank_Determinism(t *testing.T) {
	candidates := []string{"Blue", "Black", "Blush", "Bronze"}

	firstRun := Rank(BigramComparator, "Bl", candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, firstRun.Values(), Rank(BigramComparator, "Bl", candidates).Values(), "run %d", i)
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Value: "A", Score: 0.9},
		{Value: "B", Score: 0.8},
		{Value: "C", Score: 0.7},
	}

	assert.Len(t, candidates.Top(2), 2)
	assert.Len(t, candidates.Top(10), 3)
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		threshold float64
		expected  bool
	}{
		{"clear winner", []float64{0.9, 0.5}, 0.1, false},
		{"ambiguous", []float64{0.9, 0.85}, 0.1, true},
		{"single candidate", []float64{0.9}, 0.1, false},
		{"no candidates", []float64{}, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var candidates CandidateList
			for i, score := range tt.scores {
				candidates = append(candidates, Candidate{Value: string(rune('A' + i)), Score: score, Index: i})
			}

			assert.Equal(t, tt.expected, candidates.IsAmbiguous(tt.threshold))
		})
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Value: "A", Score: 0.9},
		{Value: "B", Score: 0.7},
		{Value: "C", Score: 0.5},
		{Value: "D", Score: 0.3},
	}

	assert.Len(t, candidates.AboveThreshold(0.6), 2)
	assert.Nil(t, CandidateList{}.Best())
}

func TestComparatorByName(t *testing.T) {
	cmp, ok := ComparatorByName("levenshtein")
	require.True(t, ok)
	assert.InDelta(t, 1.0, cmp.Score("Space Gray", "space-gray"), 1e-9)

	_, ok = ComparatorByName("")
	assert.True(t, ok)

	_, ok = ComparatorByName("soundex")
	assert.False(t, ok)
}
