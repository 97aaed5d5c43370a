package sink

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Feed appends every item of seq to s in order.
func Feed[T any](seq iter.Seq[T], s Sink[T]) {
	for e := range seq {
		s.Append(e)
	}
}

// FeedRunes appends runes read from r to s until r is exhausted.
// It returns the first error from r other than io.EOF.
func FeedRunes(r io.RuneReader, s Sink[rune]) error {
	for {
		c, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		s.Append(c)
	}
}

// FeedLines appends lines read from r to s, stripped of their line terminators.
func FeedLines(r io.Reader, s Sink[string]) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s.Append(sc.Text())
	}
	return sc.Err()
}
