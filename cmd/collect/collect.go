package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/ichiban/sink"
)

// Kinds lists the sink kinds collect can fill.
var Kinds = []string{"slice", "deque", "set", "ordered-set", "map", "ordered-map", "string"}

var errRunesNotString = errors.New("runes mode only applies to the string kind")

// Collect feeds r into a sink of the given kind and writes the sink's contents to w.
// Lines are the items except for the string kind with runes set, which takes runes.
func Collect(w io.Writer, r io.Reader, kind string, runes bool) error {
	if runes && kind != "string" {
		return errRunesNotString
	}

	var out []string
	switch kind {
	case "slice":
		var s []string
		if err := sink.FeedLines(r, sink.Slice(&s)); err != nil {
			return err
		}
		out = s
	case "deque":
		var d sink.Deque[string]
		if err := sink.FeedLines(r, &d); err != nil {
			return err
		}
		out = d.Slice()
	case "set":
		m := map[string]struct{}{}
		if err := sink.FeedLines(r, sink.Set(m)); err != nil {
			return err
		}
		out = slices.Sorted(maps.Keys(m))
	case "ordered-set":
		var s sink.OrderedSet[string]
		if err := sink.FeedLines(r, &s); err != nil {
			return err
		}
		out = slices.Collect(s.All())
	case "map":
		m := map[string]string{}
		if err := sink.FeedLines(r, pairs(sink.Map(m))); err != nil {
			return err
		}
		for _, k := range slices.Sorted(maps.Keys(m)) {
			out = append(out, k+"="+m[k])
		}
	case "ordered-map":
		var m sink.OrderedMap[string, string]
		if err := sink.FeedLines(r, pairs(&m)); err != nil {
			return err
		}
		for k, v := range m.All() {
			out = append(out, k+"="+v)
		}
	case "string":
		var b strings.Builder
		var err error
		if runes {
			err = sink.FeedRunes(bufio.NewReader(r), sink.Runes(&b))
		} else {
			err = sink.FeedLines(r, sink.Text(&b))
		}
		if err != nil {
			return err
		}
		out = []string{b.String()}
	default:
		return fmt.Errorf("unknown kind %q: must be one of %s", kind, strings.Join(Kinds, ", "))
	}

	for _, l := range out {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// pairs converts key=value lines into pairs for s. A line without '=' is a key with an empty value.
func pairs(s sink.Sink[sink.Pair[string, string]]) sink.Func[string] {
	return func(line string) {
		k, v, _ := strings.Cut(line, "=")
		s.Append(sink.KV(k, v))
	}
}
