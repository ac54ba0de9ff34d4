package toon

import "strings"

// lineWriter accumulates output lines with explicit per-line indent depth,
// deferring the actual indent-string construction to String(). Mirrors the
// teacher's writer: callers never concatenate indentation by hand.
type lineWriter struct {
	indentUnit string
	lines      []string
}

func newLineWriter(indentWidth int) *lineWriter {
	return &lineWriter{indentUnit: strings.Repeat(" ", indentWidth)}
}

// push appends a line at the given nesting depth.
func (w *lineWriter) push(depth int, text string) {
	if depth <= 0 {
		w.lines = append(w.lines, text)
		return
	}
	w.lines = append(w.lines, strings.Repeat(w.indentUnit, depth)+text)
}

func (w *lineWriter) String() string {
	return strings.Join(w.lines, "\n")
}
