package toon

import "strings"

// splitUnquotedColon implements §4.2.6's "split at first unquoted colon":
// a quote toggles an in_quotes flag unless escaped by a preceding lone
// backslash; a colon seen while not in quotes is the split point. Returns
// ok=false when no such colon exists (the <absent> case).
func splitUnquotedColon(line string) (key, rest string, ok bool) {
	inQuotes := false
	for j := 0; j < len(line); j++ {
		ch := line[j]
		if ch == '"' && !(j > 0 && line[j-1] == '\\') {
			inQuotes = !inQuotes
			continue
		}
		if ch == ':' && !inQuotes {
			return line[:j], line[j+1:], true
		}
	}
	return line, "", false
}

// containsUnquotedDelimiter reports whether delim appears outside quotes.
func containsUnquotedDelimiter(s, delim string) bool {
	return len(splitOutsideQuotes(s, delim)) > 1
}

// splitCSVRow implements §4.2.6's CSV row parse: delim outside quotes
// separates fields, each field is stripped, and a single trailing empty
// field (from a trailing delimiter) is omitted.
func splitCSVRow(s, delim string) []string {
	fields := splitOutsideQuotes(s, delim)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// splitOutsideQuotes splits s on delim, tracking the same quote-toggle
// rule as splitUnquotedColon, so delim characters inside a quoted field
// do not split it.
func splitOutsideQuotes(s, delim string) []string {
	if delim == "" {
		return []string{s}
	}
	var fields []string
	inQuotes := false
	start := 0
	dl := len(delim)
	for j := 0; j < len(s); j++ {
		ch := s[j]
		if ch == '"' && !(j > 0 && s[j-1] == '\\') {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes && j+dl <= len(s) && s[j:j+dl] == delim {
			fields = append(fields, s[start:j])
			j += dl - 1
			start = j + 1
		}
	}
	fields = append(fields, s[start:])
	return fields
}
