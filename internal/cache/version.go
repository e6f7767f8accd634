package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"variant-matrix/internal/catalog"
)

// Version returns a content hash of variants. Two lists with the same ids
// and specs in the same order hash equally; display labels are ignored
// because they do not affect the matrix.
func Version(variants []catalog.Variant) uint64 {
	d := xxhash.New()

	for _, v := range variants {
		writeField(d, v.ID)

		for _, s := range v.Specs {
			writeField(d, s.Name)
			writeField(d, s.Value)
		}

		_, _ = d.Write([]byte{0x1e})
	}

	return d.Sum64()
}

// writeField writes a length-prefixed string so field boundaries cannot collide.
func writeField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(strconv.Itoa(len(s)))
	_, _ = d.Write([]byte{':'})
	_, _ = d.WriteString(s)
}
