package sink

import (
	"cmp"
	"iter"

	"github.com/ichiban/sink/internal/rbtree"
)

// OrderedMap is a map that keeps its entries in ascending order of keys.
// Keys are compared with cmp.Compare, so NaN keys are equal to each other and less than any other key.
// The zero value for OrderedMap is an empty map ready to use.
type OrderedMap[K cmp.Ordered, V any] struct {
	tree rbtree.Map[K, V]
}

// Append binds the pair's value to its key, replacing any previous value.
func (m *OrderedMap[K, V]) Append(p Pair[K, V]) {
	m.tree.Set(p.Key, p.Value)
}

// Set binds value to key, replacing any previous value.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.tree.Set(key, value)
}

// Get returns the value bound to key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return m.tree.Len()
}

// Grow makes room for n more entries.
func (m *OrderedMap[K, V]) Grow(n int) {
	m.tree.Grow(n)
}

// All returns an iterator over the entries in ascending order of keys.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Keys returns an iterator over the keys in ascending order.
func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// OrderedSet is a set that keeps its members in ascending order.
// The zero value for OrderedSet is an empty set ready to use.
type OrderedSet[T cmp.Ordered] struct {
	tree rbtree.Map[T, struct{}]
}

// NewOrderedSet returns a new OrderedSet containing items.
func NewOrderedSet[T cmp.Ordered](items ...T) *OrderedSet[T] {
	var s OrderedSet[T]
	for _, e := range items {
		s.Append(e)
	}
	return &s
}

// Append adds item to the set unless it's already a member.
func (s *OrderedSet[T]) Append(item T) {
	s.tree.Set(item, struct{}{})
}

// Contains reports whether item is a member.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.tree.Get(item)
	return ok
}

// Len returns the number of members.
func (s *OrderedSet[T]) Len() int {
	return s.tree.Len()
}

// All returns an iterator over the members in ascending order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range s.tree.All() {
			if !yield(e) {
				return
			}
		}
	}
}
