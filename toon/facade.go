package toon

import "strings"

// Encode renders input as TOON text.
//
// If input is a string whose first non-whitespace character is '{' or
// '[', it is tentatively parsed as JSON: on success the parsed tree is
// encoded, on failure the original string is encoded as-is. Any other Go
// value is normalized into the six-variant Value algebra first (maps and
// slices reached via reflection become *Object/Array); anything left over
// falls back to its string form, per §4.1.1.
func Encode(input any, opts *EncodeOptions) (string, error) {
	v := ToValue(input)
	return encode(v, opts)
}

// Decode parses toonText. When asJSON is false it returns a Value tree
// (nil, bool, int64/float64, string, Array, or *Object). When asJSON is
// true it returns a pretty-printed JSON string instead.
func Decode(toonText string, opts *DecodeOptions, asJSON bool) (any, error) {
	v, err := decode(toonText, opts)
	if err != nil {
		return nil, err
	}
	if !asJSON {
		return v, nil
	}
	return valueToJSON(v)
}

// ToValue coerces an arbitrary host value into the Value algebra. A
// string that looks like a JSON document is parsed into a tree; anything
// else is normalized via normalizeValue.
func ToValue(input any) Value {
	if s, ok := input.(string); ok {
		if looksLikeJSONDocument(s) {
			if v, err := valueFromJSON(s); err == nil {
				return v
			}
		}
		return s
	}
	return normalizeValue(input)
}

func looksLikeJSONDocument(s string) bool {
	trimmed := strings.TrimLeft(s, " \t\r\n")
	if trimmed == "" {
		return false
	}
	return trimmed[0] == '{' || trimmed[0] == '['
}
