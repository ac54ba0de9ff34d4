package toon

import "fmt"

// encode renders v as TOON text. Any value outside the six variants is
// written in its fmt.Sprint string form, so the returned error is always
// nil.
func encode(v Value, opts *EncodeOptions) (string, error) {
	w := newLineWriter(opts.indent())
	if err := encodeRoot(w, v, opts); err != nil {
		return "", err
	}
	return w.String(), nil
}

func encodeRoot(w *lineWriter, v Value, opts *EncodeOptions) error {
	switch kindOf(v) {
	case kindObject:
		obj := v.(*Object)
		if obj.Len() == 0 {
			w.push(0, openBrace+closeBrace)
			return nil
		}
		return encodeObjectBody(w, 0, obj, opts)
	case kindArray:
		arr := v.(Array)
		if len(arr) == 0 {
			w.push(0, openBracket+closeBracket)
			return nil
		}
		return encodeArrayBody(w, 0, arr, opts)
	default:
		w.push(0, encodeScalar(v))
		return nil
	}
}

// encodeScalar dispatches a non-container Value per §4.1.1.
func encodeScalar(v Value) string {
	switch x := v.(type) {
	case nil:
		return nullLiteral
	case bool:
		if x {
			return trueLiteral
		}
		return falseLiteral
	case int64, float64:
		return encodeNumber(v)
	case string:
		return encodeScalarString(x)
	default:
		return encodeScalarString(fmt.Sprint(x))
	}
}

// encodeObjectBody emits one line per entry per §4.1.2, recursing through
// the §4.1.4 value-suffix table.
func encodeObjectBody(w *lineWriter, depth int, obj *Object, opts *EncodeOptions) error {
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		key := encodeScalarString(k)
		if err := encodeEntrySuffix(w, depth, key, v, opts); err != nil {
			return err
		}
	}
	return nil
}

// encodeEntrySuffix writes "<indent><key>:<suffix>" choosing the suffix
// shape per §4.1.4.
func encodeEntrySuffix(w *lineWriter, depth int, key string, v Value, opts *EncodeOptions) error {
	switch kindOf(v) {
	case kindObject:
		child := v.(*Object)
		if child.Len() == 0 {
			w.push(depth, key+colon+space+openBrace+closeBrace)
			return nil
		}
		w.push(depth, key+colon)
		return encodeObjectBody(w, depth+1, child, opts)
	case kindArray:
		arr := v.(Array)
		if len(arr) == 0 {
			w.push(depth, key+colon+space+openBracket+closeBracket)
			return nil
		}
		shape := classifyArray(arr)
		switch shape {
		case arrayShapeUniform:
			w.push(depth, key+colon)
			return encodeTabular(w, depth+1, arr, opts)
		case arrayShapePrimitive:
			w.push(depth, key+colon+space+encodeInlinePrimitive(arr, opts))
			return nil
		default:
			w.push(depth, key+colon)
			return encodeDashedList(w, depth+1, arr, opts)
		}
	default:
		w.push(depth, key+colon+space+encodeScalar(v))
		return nil
	}
}

func encodeArrayBody(w *lineWriter, depth int, arr Array, opts *EncodeOptions) error {
	switch classifyArray(arr) {
	case arrayShapeUniform:
		return encodeTabular(w, depth, arr, opts)
	case arrayShapePrimitive:
		w.push(depth, encodeInlinePrimitive(arr, opts))
		return nil
	default:
		return encodeDashedList(w, depth, arr, opts)
	}
}
