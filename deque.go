package sink

import (
	"iter"

	"github.com/ichiban/sink/internal/ring"
)

// Deque is a double-ended queue. Append pushes an item to the back.
// The zero value for Deque is an empty deque ready to use.
type Deque[T any] struct {
	buf ring.Buffer[T]
}

// NewDeque returns a new Deque containing items from front to back.
func NewDeque[T any](items ...T) *Deque[T] {
	var d Deque[T]
	for _, e := range items {
		d.buf.PushBack(e)
	}
	return &d
}

// Append pushes item to the back.
func (d *Deque[T]) Append(item T) {
	d.buf.PushBack(item)
}

// PushBack pushes item to the back.
func (d *Deque[T]) PushBack(item T) {
	d.buf.PushBack(item)
}

// PushFront pushes item to the front.
func (d *Deque[T]) PushFront(item T) {
	d.buf.PushFront(item)
}

// PopFront removes and returns the front item. It returns false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	return d.buf.PopFront()
}

// PopBack removes and returns the back item. It returns false if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	return d.buf.PopBack()
}

// Front returns the front item without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.buf.Empty() {
		var zero T
		return zero, false
	}
	return d.buf.At(0), true
}

// Back returns the back item without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.buf.Empty() {
		var zero T
		return zero, false
	}
	return d.buf.At(d.buf.Len() - 1), true
}

// At returns the i-th item from the front. It panics if i is out of range.
func (d *Deque[T]) At(i int) T {
	return d.buf.At(i)
}

// Len returns the number of items.
func (d *Deque[T]) Len() int {
	return d.buf.Len()
}

// All returns an iterator over the items from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.buf.Len(); i++ {
			if !yield(d.buf.At(i)) {
				return
			}
		}
	}
}

// Slice returns the items from front to back as a new slice.
func (d *Deque[T]) Slice() []T {
	s := make([]T, 0, d.buf.Len())
	for e := range d.All() {
		s = append(s, e)
	}
	return s
}
