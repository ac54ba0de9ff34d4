package toon

import "strings"

// decodeLine is one preprocessed input line: its raw text, leading-space
// count, and stripped content. Computing these once up front keeps the
// recursive-descent functions in decode_value.go simple cursor advances.
type decodeLine struct {
	raw     string
	indent  int
	content string
}

// lineCursor holds the shared line buffer and position that every
// parse_* function in decode_value.go reads and advances, per spec §4.2's
// "state: a line buffer and a 0-based cursor" model.
type lineCursor struct {
	lines []decodeLine
	i     int
	opts  *DecodeOptions
}

func (c *lineCursor) done() bool { return c.i >= len(c.lines) }

func (c *lineCursor) peek() (decodeLine, bool) {
	if c.done() {
		return decodeLine{}, false
	}
	return c.lines[c.i], true
}

func splitLines(text string) []decodeLine {
	raw := strings.Split(text, "\n")
	out := make([]decodeLine, len(raw))
	for i, line := range raw {
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)
		out[i] = decodeLine{raw: line, indent: indent, content: strings.TrimSpace(line)}
	}
	return out
}

// decode implements §4.2.1's entry point: the one-line special case, or a
// full parse_value(0) over the line buffer.
func decode(text string, opts *DecodeOptions) (Value, error) {
	lines := splitLines(text)
	if len(lines) == 1 {
		return parseScalarLine(lines[0].content, opts), nil
	}
	c := &lineCursor{lines: lines, opts: opts}
	return parseValue(c, 0), nil
}

// parseScalarLine implements the single-line value grammar shared by the
// entry point's one-line special case (§4.2.1) and a dashed-list item's
// "scalar-parse of rest" (§4.2.5): a key:value pair, a delimited
// primitive array, or a bare scalar.
func parseScalarLine(content string, opts *DecodeOptions) Value {
	if key, rest, ok := splitUnquotedColon(content); ok {
		o := NewObject()
		o.Set(decodeKeyText(key), parseInlineEntryValue(rest, opts))
		return o
	}
	delim := opts.delimiter()
	if !isWhollyQuoted(content) && containsUnquotedDelimiter(content, delim) {
		return decodeInlinePrimitive(content, delim)
	}
	return decodeLexeme(content)
}

// parseInlineEntryValue decodes the "rest" half of a same-line key:value
// entry (§4.2.3's "rest on the same line" branch).
func parseInlineEntryValue(rest string, opts *DecodeOptions) Value {
	rest = strings.TrimSpace(rest)
	switch rest {
	case "":
		return nil
	case openBracket + closeBracket:
		return Array{}
	case openBrace + closeBrace:
		return NewObject()
	}
	delim := opts.delimiter()
	if !isWhollyQuoted(rest) && containsUnquotedDelimiter(rest, delim) {
		return decodeInlinePrimitive(rest, delim)
	}
	return decodeLexeme(rest)
}

func decodeKeyText(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return unescapeString(s[1 : len(s)-1])
	}
	return s
}

func decodeInlinePrimitive(s, delim string) Array {
	fields := splitCSVRow(s, delim)
	arr := make(Array, len(fields))
	for i, f := range fields {
		arr[i] = decodeLexeme(f)
	}
	return arr
}

func isWhollyQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}
