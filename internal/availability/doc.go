// Package availability computes, for every value in a product's attribute
// domain, whether it is selected and whether it can still be chosen without
// contradicting the current selection.
//
// The default check is pairwise: a candidate is available when every selected
// pair co-occurs with it somewhere in the catalog. WithExactAvailability
// switches to asking the resolver whether a variant carrying the selection
// plus the candidate exists.
package availability
