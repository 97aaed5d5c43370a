package sink

// Pair is a key-value pair, the item type of mapping sinks.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// KV returns a Pair of k and v.
func KV[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Map returns a Sink that binds the pair's value to its key in m, replacing any previous value.
// Like an assignment to a nil map, appending to a Sink over a nil map panics.
func Map[M ~map[K]V, K comparable, V any](m M) Func[Pair[K, V]] {
	return func(p Pair[K, V]) {
		m[p.Key] = p.Value
	}
}

// Set returns a Sink that adds items to m as members of a set. Duplicates are absorbed.
func Set[M ~map[E]struct{}, E comparable](m M) Func[E] {
	return func(item E) {
		m[item] = struct{}{}
	}
}
