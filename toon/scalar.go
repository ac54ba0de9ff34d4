package toon

import (
	"regexp"
	"strconv"
	"strings"
)

var looksNumericRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// needsQuotes implements spec §4.3's NEEDS_QUOTES(s): true iff the first or
// last character is a space, or s contains any RESERVED character.
func needsQuotes(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return true
	}
	for i := 0; i < len(s); i++ {
		for _, r := range reservedChars {
			if s[i] == r {
				return true
			}
		}
	}
	return false
}

func looksNumeric(s string) bool {
	return looksNumericRe.MatchString(s)
}

func looksLikeLiteral(s string) bool {
	return s == trueLiteral || s == falseLiteral || s == nullLiteral
}

// encodeScalarString renders a string per §4.3: quoted with the minimal
// `\\`/`\"` escape set when NEEDS_QUOTES(s), when s looks numeric, or when
// s is one of the reserved literals; otherwise emitted bare. This is the
// only place string values AND object keys are quoted (§4.1.4 routes key
// encoding through this same function).
func encodeScalarString(s string) string {
	if s == "" {
		return `""`
	}
	if needsQuotes(s) || looksNumeric(s) || looksLikeLiteral(s) {
		return `"` + escapeString(s) + `"`
	}
	return s
}

// escapeString applies the spec's minimal two-character escape set. Unlike
// many textual formats, TOON does not escape control characters such as
// \t/\n/\r inside quoted strings; they are written through verbatim.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescapeString reverses escapeString: \\ -> \, \" -> ", any other
// backslash sequence passes through unchanged (the input is untrusted and
// decode is total, so an unrecognized escape is not an error).
func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case '"':
				b.WriteByte('"')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// encodeNumber renders a Number per its default textual form: integers
// without a decimal point, floats in the shortest round-tripping decimal
// form with no scientific notation and at least one fractional digit (an
// integral float such as 3.0 is written "3.0", so it decodes as a float).
func encodeNumber(v Value) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		s := strconv.FormatFloat(n, 'f', -1, 64)
		if looksNumeric(s) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return ""
	}
}

// decodeLexeme interprets a single unquoted or quoted token as a Value,
// per §4.3: "null"/"true"/"false" literals, an integer or float matching
// the numeric lexicon, a quoted string (escapes reversed), or else the
// bare text as a string.
func decodeLexeme(tok string) Value {
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return unescapeString(tok[1 : len(tok)-1])
	}
	switch tok {
	case nullLiteral:
		return nil
	case trueLiteral:
		return true
	case falseLiteral:
		return false
	}
	if looksNumeric(tok) {
		if !strings.Contains(tok, ".") {
			if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
				return i
			}
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return f
		}
	}
	return tok
}
