// Package selection validates and repairs a user's attribute selection
// against a combination matrix.
//
// Clean removes entries the matrix does not know and entries that fail the
// pairwise co-occurrence test against any other known entry. Repair runs
// Clean after a user change and tries to re-populate each dropped attribute,
// other than the one the user just changed, with the most similar value that
// keeps the selection self-consistent. Similarity comes from a swappable
// match.Comparator.
//
// Every function returns a new Selection; inputs are never modified.
package selection
