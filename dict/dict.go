// Package dict filters maps by key.
package dict

import "slices"

// Only returns a new map holding the entries of m whose key is in keys.
// Keys missing from m are ignored.
func Only[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, min(len(keys), len(m)))
	for k, v := range m {
		if slices.Contains(keys, k) {
			out[k] = v
		}
	}
	return out
}

// Except returns a new map holding the entries of m whose key is not in
// keys.
func Except[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(m))
	for k, v := range m {
		if !slices.Contains(keys, k) {
			out[k] = v
		}
	}
	return out
}
