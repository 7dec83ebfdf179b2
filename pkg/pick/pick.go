// Package pick copies selected keys out of a map.
package pick

// Pick returns a new map holding only the entries of m whose keys appear in
// keys. Keys missing from m are ignored; m is never modified.
func Pick[K comparable, V any](keys []K, m map[K]V) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Picker returns Pick with keys bound, for reuse across maps.
func Picker[K comparable, V any](keys ...K) func(map[K]V) map[K]V {
	bound := append([]K(nil), keys...)
	return func(m map[K]V) map[K]V {
		return Pick(bound, m)
	}
}
