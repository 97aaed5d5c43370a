package sink

// Slice returns a Sink that appends items to the tail of *s.
func Slice[S ~[]E, E any](s *S) Func[E] {
	return func(item E) {
		*s = append(*s, item)
	}
}
