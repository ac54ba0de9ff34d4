package toon

import (
	"regexp"
	"strings"
)

// tabularHeaderRe is the authoritative header shape from spec §6:
// optional "[N]" row-count marker, then a brace-delimited field list, a
// trailing colon, and nothing else on the line.
var tabularHeaderRe = regexp.MustCompile(`^(\[\d+\])?\{([^}]+)\}:$`)

func isTabularHeader(content string) bool {
	return tabularHeaderRe.MatchString(content)
}

func hasUnquotedColon(content string) bool {
	_, _, ok := splitUnquotedColon(content)
	return ok
}

// parseValue implements §4.2.2: classify the current line by its prefix
// shape and dispatch, or return Null without advancing if expectedIndent
// isn't met.
func parseValue(c *lineCursor, expectedIndent int) Value {
	line, ok := c.peek()
	if !ok {
		return nil
	}
	if line.indent < expectedIndent {
		return nil
	}
	content := line.content
	switch {
	case isTabularHeader(content):
		return parseTabularArray(c, line.indent)
	case strings.HasPrefix(content, dashMarker):
		return parseListArray(c, line.indent)
	case hasUnquotedColon(content):
		return parseHash(c, line.indent)
	default:
		c.i++
		return decodeLexeme(content)
	}
}

// parseHash implements §4.2.3's key-value line loop, including the
// tabular-header lookahead concession for a bare key.
func parseHash(c *lineCursor, expectedIndent int) *Object {
	obj := NewObject()
	for {
		line, ok := c.peek()
		if !ok || line.indent < expectedIndent {
			break
		}
		content := line.content
		if content == "" || isTabularHeader(content) || strings.HasPrefix(content, dashMarker) {
			break
		}
		keyText, rest, hasColon := splitUnquotedColon(content)
		if !hasColon {
			break
		}
		key := decodeKeyText(keyText)

		if strings.TrimSpace(rest) == "" {
			c.i++
			if next, ok := c.peek(); ok && isTabularHeader(next.content) {
				obj.Set(key, parseTabularArray(c, next.indent))
			} else {
				obj.Set(key, parseValue(c, expectedIndent))
			}
			continue
		}

		c.i++
		obj.Set(key, parseInlineEntryValue(rest, c.opts))
	}
	return obj
}

// parseTabularArray implements §4.2.4.
func parseTabularArray(c *lineCursor, expectedIndent int) Array {
	header, ok := c.peek()
	if !ok {
		return Array{}
	}
	m := tabularHeaderRe.FindStringSubmatch(header.content)
	if m == nil {
		return Array{}
	}
	delim := c.opts.delimiter()
	rawFields := splitOutsideQuotes(m[2], delim)
	fields := make([]string, len(rawFields))
	for i, f := range rawFields {
		fields[i] = strings.TrimSpace(f)
	}
	c.i++

	rows := Array{}
	for {
		line, ok := c.peek()
		if !ok || line.indent <= expectedIndent {
			break
		}
		if line.content == "" {
			break
		}
		if hasUnquotedColon(line.content) && !isTabularHeader(line.content) {
			break
		}
		cells := splitCSVRow(line.content, delim)
		row := NewObject()
		for idx, f := range fields {
			if idx < len(cells) {
				row.Set(f, decodeLexeme(cells[idx]))
			} else {
				row.Set(f, nil)
			}
		}
		rows = append(rows, row)
		c.i++
	}
	return rows
}

// parseListArray implements §4.2.5.
func parseListArray(c *lineCursor, expectedIndent int) Array {
	step := c.opts.indent()
	arr := Array{}
	for {
		line, ok := c.peek()
		if !ok || line.indent < expectedIndent {
			break
		}
		if !strings.HasPrefix(line.content, dashMarker) {
			break
		}
		rest := strings.TrimPrefix(line.content, dashMarker)
		rest = strings.TrimPrefix(rest, space)
		c.i++
		if rest == "" {
			arr = append(arr, parseValue(c, expectedIndent+step))
		} else {
			arr = append(arr, parseScalarLine(rest, c.opts))
		}
	}
	return arr
}
