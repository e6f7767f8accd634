// Package cache keeps built combination matrices per product and rebuilds
// one only when the product's variant list changes.
package cache
