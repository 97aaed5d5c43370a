package ring

// Buffer is a growable ring buffer.
// The zero value for Buffer is an empty buffer ready to use.
type Buffer[E any] struct {
	elems []E
	start int
	n     int
}

// NewBuffer returns a new empty Buffer with room for size elements.
func NewBuffer[E any](size int) *Buffer[E] {
	return &Buffer[E]{elems: make([]E, size)}
}

// Len returns the number of elements in the buffer.
func (b *Buffer[E]) Len() int {
	return b.n
}

// Cap returns the number of elements the buffer can hold without growing.
func (b *Buffer[E]) Cap() int {
	return len(b.elems)
}

// Empty returns if the buffer is empty.
func (b *Buffer[E]) Empty() bool {
	return b.n == 0
}

// PushBack puts an element after the last element.
func (b *Buffer[E]) PushBack(elem E) {
	b.grow()
	b.elems[b.index(b.n)] = elem
	b.n++
}

// PushFront puts an element before the first element.
func (b *Buffer[E]) PushFront(elem E) {
	b.grow()
	b.start = b.index(len(b.elems) - 1)
	b.elems[b.start] = elem
	b.n++
}

// PopFront removes and returns the first element.
func (b *Buffer[E]) PopFront() (E, bool) {
	var zero E
	if b.n == 0 {
		return zero, false
	}
	e := b.elems[b.start]
	b.elems[b.start] = zero
	b.start = b.index(1)
	b.n--
	return e, true
}

// PopBack removes and returns the last element.
func (b *Buffer[E]) PopBack() (E, bool) {
	var zero E
	if b.n == 0 {
		return zero, false
	}
	i := b.index(b.n - 1)
	e := b.elems[i]
	b.elems[i] = zero
	b.n--
	return e, true
}

// At returns the i-th element counting from the first one.
// It panics if i is out of range.
func (b *Buffer[E]) At(i int) E {
	if i < 0 || i >= b.n {
		panic("ring: index out of range")
	}
	return b.elems[b.index(i)]
}

func (b *Buffer[E]) index(i int) int {
	return (b.start + i) % len(b.elems)
}

// grow makes room for one more element, unwrapping the elements to the head of a new slice.
func (b *Buffer[E]) grow() {
	if b.n < len(b.elems) {
		return
	}
	size := 2 * len(b.elems)
	if size == 0 {
		size = 4
	}
	elems := make([]E, size)
	k := copy(elems, b.elems[b.start:])
	copy(elems[k:], b.elems[:b.start])
	b.elems = elems
	b.start = 0
}
