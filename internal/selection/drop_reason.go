package selection

import "variant-matrix/internal/diagnostic"

//go:generate go tool stringer -type=DropReason -output=drop_reason_string.go

// DropReason explains why Clean removed a selection entry.
type DropReason int

const (
	_ DropReason = iota // zero value is invalid

	// DropUnknownValue means no variant carries the (attribute, value) pair.
	DropUnknownValue
	// DropIncompatible means the value never co-occurs with another selected value.
	DropIncompatible
)

// Code returns the diagnostic code for the reason.
func (r DropReason) Code() string {
	switch r {
	case DropUnknownValue:
		return diagnostic.CodeUnknownValue
	case DropIncompatible:
		return diagnostic.CodeIncompatibleValue
	default:
		return r.String()
	}
}

// MarshalText renders the reason as its diagnostic code.
func (r DropReason) MarshalText() ([]byte, error) {
	return []byte(r.Code()), nil
}
