package toon

// Value is any TOON-encodable value: nil, bool, int64, float64, string,
// Array, or *Object. Encode and Decode never produce or accept any other
// concrete type.
type Value = any

// Array is an ordered sequence of Values.
type Array = []Value

// kind classifies a Value into one of the six variants of the data model.
type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

func kindOf(v Value) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case int64, float64:
		return kindNumber
	case string:
		return kindString
	case Array:
		return kindArray
	case *Object:
		return kindObject
	default:
		return kindString
	}
}

func isPrimitive(v Value) bool {
	switch kindOf(v) {
	case kindNull, kindBool, kindNumber, kindString:
		return true
	default:
		return false
	}
}
