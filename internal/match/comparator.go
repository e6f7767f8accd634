package match

// Comparator scores how similar two attribute values are.
// Higher is more similar; implementations should return values in [0, 1].
type Comparator interface {
	Score(a, b string) float64
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(a, b string) float64

// Score implements Comparator.
func (f ComparatorFunc) Score(a, b string) float64 { return f(a, b) }

var (
	// BigramComparator is the default comparator used for selection repair.
	BigramComparator Comparator = ComparatorFunc(Bigram)
	// LevenshteinComparator scores by normalized edit distance.
	LevenshteinComparator Comparator = ComparatorFunc(LevenshteinSimilarity)
)

// ComparatorByName returns a built-in comparator by name ("bigram" or
// "levenshtein").
func ComparatorByName(name string) (Comparator, bool) {
	switch name {
	case "", "bigram":
		return BigramComparator, true
	case "levenshtein":
		return LevenshteinComparator, true
	default:
		return nil, false
	}
}
