// Package resolve finds the variants that carry every pair of a selection by
// intersecting item sets in the combination matrix. Unlike the pairwise
// co-occurrence checks this is exact.
package resolve
