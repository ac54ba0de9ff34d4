// Package toon implements encoding and decoding of TOON (Token-Oriented
// Object Notation), an indentation-sensitive textual format for the kind of
// tree-structured data JSON can express.
//
// TOON's distinguishing feature is a tabular representation for uniform
// arrays of records: an array of objects that mostly share the same keys is
// written as a single header line naming the columns followed by one
// comma-separated row per element, instead of repeating every key on every
// element the way JSON does.
//
// # Shapes
//
// The encoder chooses one of four shapes per container:
//
//	{}            empty object / array
//	key: value    object, one entry per line
//	a,b,c         inline primitive array
//	[2]{a,b}:     tabular array (header + CSV rows)
//	- item        dashed-list array (anything else)
//
// # Usage
//
//	out, err := toon.Encode(map[string]any{
//		"users": []any{
//			map[string]any{"id": int64(1), "name": "Alice"},
//			map[string]any{"id": int64(2), "name": "Bob"},
//		},
//	}, nil)
//	// out == "users:\n  [2]{id,name}:\n    1,Alice\n    2,Bob"
//
//	v, err := toon.Decode(out, nil, false)
//
// Reference: https://github.com/toon-format/spec
package toon
