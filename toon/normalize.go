package toon

import (
	"fmt"
	"reflect"
	"sort"
)

// normalizeValue walks an arbitrary Go value via reflection and coerces it
// into the six-variant Value algebra, so that Encode accepts plain
// map[string]any/[]any trees (as produced by encoding/json.Unmarshal or
// hand-built test fixtures) in addition to *Object/Array built directly
// against this package's API.
//
// A host map has no defined iteration order, so its keys are sorted for a
// deterministic, reproducible encoding; callers who need a specific key
// order should build a *Object directly instead.
func normalizeValue(v Value) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		return x
	case string:
		return x
	case int64:
		return x
	case float64:
		return x
	case *Object:
		out := NewObject()
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			out.Set(k, normalizeValue(val))
		}
		return out
	case Array:
		out := make(Array, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalizeValue(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		out := make(Array, n)
		for i := 0; i < n; i++ {
			out[i] = normalizeValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		keyed := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			ks := fmt.Sprint(k.Interface())
			keys = append(keys, ks)
			keyed[ks] = k
		}
		sort.Strings(keys)
		out := NewObject()
		for _, ks := range keys {
			out.Set(ks, normalizeValue(rv.MapIndex(keyed[ks]).Interface()))
		}
		return out
	default:
		return fmt.Sprint(v)
	}
}
