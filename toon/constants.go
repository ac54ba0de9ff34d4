package toon

// Structural characters and literals shared by the encoder and decoder.
const (
	colon        = ":"
	comma        = ","
	space        = " "
	pipe         = "|"
	tab          = "\t"
	newline      = "\n"
	openBracket  = "["
	closeBracket = "]"
	openBrace    = "{"
	closeBrace   = "}"
	doubleQuote  = "\""
	backslash    = "\\"
	dashMarker   = "-"

	nullLiteral  = "null"
	trueLiteral  = "true"
	falseLiteral = "false"

	defaultIndent    = 2
	defaultDelimiter = ","
)

// reservedChars are the characters that force quoting per spec §4.3's
// NEEDS_QUOTES predicate (RESERVED = , : [ ] { } # \n \r \t).
var reservedChars = []byte{',', ':', '[', ']', '{', '}', '#', '\n', '\r', '\t'}
