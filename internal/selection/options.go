package selection

import "variant-matrix/internal/match"

// RepairOption configures Repair and Apply.
type RepairOption func(*repairOptions)

type repairOptions struct {
	comparator    match.Comparator
	singleAttempt bool
	minScore      float64
}

func gatherRepairOptions(opts []RepairOption) repairOptions {
	o := repairOptions{comparator: match.BigramComparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithComparator sets the similarity strategy used to rank replacements.
// A nil comparator keeps the default bigram comparator.
func WithComparator(cmp match.Comparator) RepairOption {
	return func(o *repairOptions) {
		if cmp != nil {
			o.comparator = cmp
		}
	}
}

// WithSingleAttempt only tries the closest candidate for each dropped
// attribute instead of walking down the ranking.
func WithSingleAttempt() RepairOption {
	return func(o *repairOptions) { o.singleAttempt = true }
}

// WithMinScore rejects replacement candidates scoring below s. The default
// is 0, so any compatible value is accepted, even one sharing nothing with
// the dropped value.
func WithMinScore(s float64) RepairOption {
	return func(o *repairOptions) { o.minScore = s }
}
