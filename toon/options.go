package toon

// EncodeOptions controls how Encode renders a Value tree.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. Zero means
	// defaultIndent.
	Indent int

	// Delimiter separates fields within an inline array and columns
	// within a tabular row/header. Empty means defaultDelimiter.
	// Valid values are "," "\t" "|".
	Delimiter string

	// LengthMarker, when false, omits the "[N]" row count prefix from
	// tabular headers. Defaults to true (markers on).
	// This is a tri-state: callers must use a *bool to distinguish
	// "unset" from "explicitly off", so it is stored as *bool.
	LengthMarker *bool
}

func (o *EncodeOptions) indent() int {
	if o == nil || o.Indent <= 0 {
		return defaultIndent
	}
	return o.Indent
}

func (o *EncodeOptions) delimiter() string {
	if o == nil || o.Delimiter == "" {
		return defaultDelimiter
	}
	return o.Delimiter
}

func (o *EncodeOptions) lengthMarker() bool {
	if o == nil || o.LengthMarker == nil {
		return true
	}
	return *o.LengthMarker
}

// DecodeOptions controls how Decode parses TOON text.
type DecodeOptions struct {
	// Indent is the expected number of spaces per nesting level. Zero
	// means defaultIndent. The decoder uses it only as the minimum extra
	// indentation of a dashed-list item's value that starts on the line
	// after a bare "-"; it never rejects input on an indentation mismatch.
	Indent int

	// Delimiter is the expected field separator for inline arrays and
	// tabular rows. Empty means defaultDelimiter.
	Delimiter string
}

func (o *DecodeOptions) indent() int {
	if o == nil || o.Indent <= 0 {
		return defaultIndent
	}
	return o.Indent
}

func (o *DecodeOptions) delimiter() string {
	if o == nil || o.Delimiter == "" {
		return defaultDelimiter
	}
	return o.Delimiter
}
