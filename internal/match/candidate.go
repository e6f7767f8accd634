package match

import "sort"

// Candidate is a candidate value scored against a target value.
type Candidate struct {
	Value string  `json:"value"`
	Score float64 `json:"score"`
	// Index is the candidate's position in the input list; it breaks ties.
	Index int `json:"index"`
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every candidate against target with cmp and returns them sorted
// by score descending. Equal scores keep input order.
func Rank(cmp Comparator, target string, candidates []string) CandidateList {
	if cmp == nil {
		cmp = BigramComparator
	}

	list := make(CandidateList, 0, len(candidates))
	for i, c := range candidates {
		list = append(list, Candidate{Value: c, Score: cmp.Score(target, c), Index: i})
	}

	sort.Sort(list)

	return list
}

// Closest returns the candidate most similar to target using the bigram
// comparator. It returns false for an empty candidate list and the sole
// candidate when there is only one. Ties resolve to the first maximal
// candidate in input order.
func Closest(target string, candidates []string) (string, bool) {
	return ClosestWith(BigramComparator, target, candidates)
}

// ClosestWith is Closest with an explicit comparator.
func ClosestWith(cmp Comparator, target string, candidates []string) (string, bool) {
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	}

	best := Rank(cmp, target, candidates).Best()

	return best.Value, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by input position.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// Values returns the candidate values in ranked order.
func (c CandidateList) Values() []string {
	out := make([]string, len(c))
	for i, cand := range c {
		out[i] = cand.Value
	}
	return out
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Score - c[1].Score
	return diff < threshold
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
const DefaultAmbiguityThreshold = 0.1
