package sortutil

import "sort"

// Keys returns the keys of a string-keyed map in ascending order
// (byte order, which equals code point order for UTF-8).
func Keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
