package cache

import (
	"sync"

	"variant-matrix/internal/catalog"
	"variant-matrix/internal/matrix"
)

type entry struct {
	version uint64
	matrix  *matrix.Matrix
	domain  catalog.Domain
}

// MatrixCache maps a product id to its built matrix and domain.
// It is safe for concurrent use. Cached matrices are immutable and shared.
type MatrixCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	builds  int
}

// NewMatrixCache creates an empty cache.
func NewMatrixCache() *MatrixCache {
	return &MatrixCache{entries: map[string]entry{}}
}

// Get returns the matrix and domain for product, building them when the
// product is new or its variants changed since the last call.
func (c *MatrixCache) Get(product string, variants []catalog.Variant) (*matrix.Matrix, catalog.Domain) {
	version := Version(variants)

	c.mu.RLock()
	e, ok := c.entries[product]
	c.mu.RUnlock()

	if ok && e.version == version {
		return e.matrix, e.domain
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have rebuilt it while we waited.
	if e, ok := c.entries[product]; ok && e.version == version {
		return e.matrix, e.domain
	}

	e = entry{
		version: version,
		matrix:  matrix.Build(variants),
		domain:  catalog.DeriveDomain(variants),
	}
	c.entries[product] = e
	c.builds++

	return e.matrix, e.domain
}

// Invalidate drops the cached entry for product.
func (c *MatrixCache) Invalidate(product string) {
	c.mu.Lock()
	delete(c.entries, product)
	c.mu.Unlock()
}

// Len returns the number of cached products.
func (c *MatrixCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Builds returns how many matrices the cache has built.
func (c *MatrixCache) Builds() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.builds
}
