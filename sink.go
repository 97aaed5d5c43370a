package sink

// Sink accepts one item at a time and incorporates it into itself.
type Sink[T any] interface {
	Append(item T)
}

// Func is a function that works as a Sink.
type Func[T any] func(item T)

// Append calls f(item).
func (f Func[T]) Append(item T) {
	f(item)
}
