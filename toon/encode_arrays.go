package toon

import (
	"math"
	"strconv"
	"strings"
)

type arrayShape int

const (
	arrayShapeDashed arrayShape = iota
	arrayShapeUniform
	arrayShapePrimitive
)

// classifyArray implements §4.1.3's three-way classification order:
// uniform, then primitive, then dashed-list.
func classifyArray(arr Array) arrayShape {
	if isUniformArray(arr) {
		return arrayShapeUniform
	}
	if isPrimitiveArray(arr) {
		return arrayShapePrimitive
	}
	return arrayShapeDashed
}

// isPrimitiveArray reports whether every element is a scalar (§3).
func isPrimitiveArray(arr Array) bool {
	for _, v := range arr {
		if !isPrimitive(v) {
			return false
		}
	}
	return true
}

// isUniformArray implements §3's uniformity test: non-empty, every element
// an Object, and every element's key-set overlaps the first element's
// key-set in at least ceil(0.8*|K|) entries.
func isUniformArray(arr Array) bool {
	if len(arr) == 0 {
		return false
	}
	first, ok := arr[0].(*Object)
	if !ok {
		return false
	}
	k := first.Keys()
	threshold := int(math.Ceil(0.8 * float64(len(k))))
	keySet := make(map[string]struct{}, len(k))
	for _, key := range k {
		keySet[key] = struct{}{}
	}
	for _, elem := range arr {
		obj, ok := elem.(*Object)
		if !ok {
			return false
		}
		overlap := 0
		for _, key := range obj.Keys() {
			if _, in := keySet[key]; in {
				overlap++
			}
		}
		if overlap < threshold {
			return false
		}
	}
	return true
}

// unionOfKeys returns the first row's keys in order, followed by keys
// introduced by later rows in first-seen order, per §4.1.3's tabular rule.
func unionOfKeys(arr Array) []string {
	var union []string
	seen := make(map[string]struct{})
	for _, elem := range arr {
		obj, ok := elem.(*Object)
		if !ok {
			continue
		}
		for _, k := range obj.Keys() {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				union = append(union, k)
			}
		}
	}
	return union
}

func encodeTabular(w *lineWriter, depth int, arr Array, opts *EncodeOptions) error {
	fields := unionOfKeys(arr)
	delim := opts.delimiter()
	header := openBrace + strings.Join(fields, delim) + closeBrace + colon
	if opts.lengthMarker() {
		header = openBracket + strconv.Itoa(len(arr)) + closeBracket + header
	}
	w.push(depth, header)
	for _, elem := range arr {
		obj, _ := elem.(*Object)
		cells := make([]string, len(fields))
		for i, f := range fields {
			v, ok := obj.Get(f)
			if !ok {
				v = nil
			}
			cells[i] = encodeScalar(v)
		}
		w.push(depth+1, strings.Join(cells, delim))
	}
	return nil
}

func encodeInlinePrimitive(arr Array, opts *EncodeOptions) string {
	delim := opts.delimiter()
	cells := make([]string, len(arr))
	for i, v := range arr {
		cells[i] = encodeScalar(v)
	}
	return strings.Join(cells, delim)
}

// encodeDashedList implements §4.1.3's dashed-list rule: an element whose
// own encoding spans multiple lines gets a bare dash and a reindented
// block; anything that encodes to a single line (including a primitive
// array or a short object) rides on the dash's own line.
func encodeDashedList(w *lineWriter, depth int, arr Array, opts *EncodeOptions) error {
	for _, elem := range arr {
		switch {
		case kindOf(elem) == kindObject && elem.(*Object).Len() == 0:
			w.push(depth, dashMarker+space+openBrace+closeBrace)
		case kindOf(elem) == kindArray && len(elem.(Array)) == 0:
			w.push(depth, dashMarker+space+openBracket+closeBracket)
		case isPrimitive(elem):
			w.push(depth, dashMarker+space+encodeScalar(elem))
		default:
			text, err := encode(elem, opts)
			if err != nil {
				return err
			}
			if strings.Contains(text, "\n") {
				w.push(depth, dashMarker)
				for _, line := range strings.Split(text, "\n") {
					w.push(depth+1, line)
				}
			} else {
				w.push(depth, dashMarker+space+text)
			}
		}
	}
	return nil
}
