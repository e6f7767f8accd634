package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep ra as the shorter slice so the rows stay small
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinSimilarity computes a similarity score between 0 and 1 on the
// normalized forms of a and b. 1.0 means identical after normalization.
// The score is: 1 - (distance / max(len(a), len(b))).
func LevenshteinSimilarity(a, b string) float64 {
	na := []rune(NormalizeValue(a))
	nb := []rune(NormalizeValue(b))

	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	maxLen := max(len(na), len(nb))

	return 1.0 - float64(Levenshtein(string(na), string(nb)))/float64(maxLen)
}
