package availability

// Mode selects how availability of an unselected value is decided.
type Mode int

const (
	// ModePairwise checks co-occurrence of each selected pair with the candidate.
	ModePairwise Mode = iota
	// ModeExact requires a variant carrying the whole selection plus the candidate.
	ModeExact
)

// Option configures Calculate.
type Option func(*options)

type options struct {
	mode Mode
}

func gatherOptions(opts []Option) options {
	o := options{mode: ModePairwise}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMode sets the availability mode.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithExactAvailability is shorthand for WithMode(ModeExact).
func WithExactAvailability() Option {
	return WithMode(ModeExact)
}
