package catalog

import "errors"

// ErrNoVariants is returned when a catalog file declares no variants.
var ErrNoVariants = errors.New("catalog has no variants")
