package toon

import (
	"bytes"
	"encoding/json"
	"strings"
)

// valueFromJSON parses a JSON document into the six-variant Value algebra,
// preserving object key order via *Object rather than map[string]any.
func valueFromJSON(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	return decodeJSONValue(dec)
}

// valueToJSON serializes v (as produced by decode) to pretty-printed JSON,
// used by Decode's json=true option.
func valueToJSON(v Value) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonMarshalable(v)); err != nil {
		return "", &DecodeError{Message: "re-marshal to JSON", Cause: err}
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// jsonMarshalable walks Array elements so that every nested *Object goes
// through its own MarshalJSON and keeps key order.
func jsonMarshalable(v Value) any {
	switch x := v.(type) {
	case Array:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = jsonMarshalable(e)
		}
		return out
	default:
		return x
	}
}
