package sink

import (
	"bytes"
	"strings"
)

// Runes returns a Sink that writes the UTF-8 encoding of each rune to b.
// An invalid rune is written as utf8.RuneError.
func Runes(b *strings.Builder) Func[rune] {
	return func(r rune) {
		_, _ = b.WriteRune(r)
	}
}

// Text returns a Sink that writes each string to b.
func Text(b *strings.Builder) Func[string] {
	return func(s string) {
		_, _ = b.WriteString(s)
	}
}

// BufferRunes returns a Sink that writes the UTF-8 encoding of each rune to b.
func BufferRunes(b *bytes.Buffer) Func[rune] {
	return func(r rune) {
		_, _ = b.WriteRune(r)
	}
}

// BufferText returns a Sink that writes each string to b.
func BufferText(b *bytes.Buffer) Func[string] {
	return func(s string) {
		_, _ = b.WriteString(s)
	}
}
