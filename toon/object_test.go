package toon

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("z", int64(1))
	o.Set("a", int64(2))
	o.Set("m", int64(3))

	want := []string{"z", "a", "m"}
	if diff := cmp.Diff(want, o.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectSetUpdateKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Set("a", int64(1))
	o.Set("b", int64(2))
	o.Set("a", int64(99))

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, o.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	v, ok := o.Get("a")
	if !ok || v != int64(99) {
		t.Errorf("Get(a) = %v, %v, want 99, true", v, ok)
	}
}

func TestObjectDelete(t *testing.T) {
	o := NewObject()
	o.Set("a", int64(1))
	o.Set("b", int64(2))
	o.Delete("a")

	if o.Has("a") {
		t.Error("expected a to be deleted")
	}
	want := []string{"b"}
	if diff := cmp.Diff(want, o.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectJSONRoundTrip(t *testing.T) {
	o := NewObject()
	o.Set("z", int64(1))
	o.Set("a", Array{int64(1), int64(2)})
	nested := NewObject()
	nested.Set("inner", "value")
	o.Set("nested", nested)

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Object
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if diff := cmp.Diff(o.Keys(), back.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	innerVal, ok := back.Get("nested")
	if !ok {
		t.Fatal("missing nested key after round trip")
	}
	innerObj, ok := innerVal.(*Object)
	if !ok {
		t.Fatalf("nested value is %T, want *Object", innerVal)
	}
	v, _ := innerObj.Get("inner")
	if v != "value" {
		t.Errorf("nested.inner = %v, want \"value\"", v)
	}
}
