package toon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// roundTripCorpus covers each of the four encoder shapes, nesting, and the
// decoder's total/lossless guarantees for quoted and numeric-looking
// strings — law 1 of spec §8 ("decode(encode(v)) = v" for NaN/Inf-free
// trees).
func roundTripCorpus() []Value {
	return []Value{
		nil,
		true,
		false,
		int64(42),
		int64(-7),
		3.5,
		"hello",
		"",
		"42",
		"true",
		"a,b:c",
		obj("name", "Alice", "age", int64(30)),
		Array{"red", "green", "blue"},
		Array{int64(1), int64(2), int64(3)},
		Array{
			obj("id", int64(1), "name", "Alice"),
			obj("id", int64(2), "name", "Bob"),
		},
		Array{"string", int64(42), obj("key", "value")},
		obj("nested", obj("inner", "value")),
		obj("items", Array{
			obj("id", int64(1), "name", "Alice"),
			obj("id", int64(2), "name", "Bob"),
		}),
		obj("deep", Array{
			Array{"a", "b"},
			obj("x", int64(1)),
		}),
	}
}

func TestRoundTrip(t *testing.T) {
	for i, v := range roundTripCorpus() {
		encoded, err := encode(v, nil)
		if err != nil {
			t.Fatalf("case %d: encode: %v", i, err)
		}
		decoded, err := decode(encoded, nil)
		if err != nil {
			t.Fatalf("case %d: decode: %v", i, err)
		}
		if diff := cmp.Diff(v, decoded, cmp.Comparer(objectsEqual)); diff != "" {
			t.Errorf("case %d: round trip mismatch via %q (-want +got):\n%s", i, encoded, diff)
		}
	}
}

func TestRoundTripWithCustomDelimiterAndIndent(t *testing.T) {
	opts := &EncodeOptions{Indent: 4, Delimiter: "|"}
	dopts := &DecodeOptions{Indent: 4, Delimiter: "|"}
	v := Array{
		obj("id", int64(1), "name", "Alice"),
		obj("id", int64(2), "name", "Bob"),
	}
	encoded, err := encode(v, opts)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := decode(encoded, dopts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, decoded, cmp.Comparer(objectsEqual)); diff != "" {
		t.Errorf("mismatch via %q (-want +got):\n%s", encoded, diff)
	}
}

func TestRoundTripLengthMarkerOff(t *testing.T) {
	off := false
	opts := &EncodeOptions{LengthMarker: &off}
	v := Array{obj("a", int64(1)), obj("a", int64(2))}
	encoded, err := encode(v, opts)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := decode(encoded, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, decoded, cmp.Comparer(objectsEqual)); diff != "" {
		t.Errorf("mismatch via %q (-want +got):\n%s", encoded, diff)
	}
}

// objectsEqual lets go-cmp compare *Object values structurally (same keys
// in the same order, same values) without exporting internal fields.
func objectsEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	ak, bk := a.Keys(), b.Keys()
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
		av, _ := a.Get(ak[i])
		bv, _ := b.Get(bk[i])
		if diff := cmp.Diff(av, bv, cmp.Comparer(objectsEqual)); diff != "" {
			return false
		}
	}
	return true
}
