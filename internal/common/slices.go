package common

import (
	"cmp"
	"slices"
)

// AppendUnique appends v to s unless s already contains it.
func AppendUnique[S ~[]E, E comparable](s S, v E) S {
	if slices.Contains(s, v) {
		return s
	}

	return append(s, v)
}

// Intersect returns the elements of a that are also in b, in a's order.
func Intersect[S ~[]E, E comparable](a, b S) S {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	set := make(map[E]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}

	var out S

	for _, v := range a {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
