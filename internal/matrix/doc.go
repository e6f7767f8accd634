// Package matrix builds the combination matrix of a product: a compatibility
// index over the (attribute, value) pairs of its variants.
//
// For every pair the matrix records the variants carrying it and, for every
// other attribute, the values that co-occur with it on at least one variant.
// Co-occurrence is pairwise. With three or more attributes a set of pairwise
// compatible values may still match no single variant; the item sets are
// exact and are what the resolver intersects.
//
// A Matrix is immutable after Build and safe to share between goroutines.
package matrix
