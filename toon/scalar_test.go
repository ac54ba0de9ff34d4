package toon

import "testing"

func TestNeedsQuotes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"plain", "hello", false},
		{"leading space", " hello", true},
		{"trailing space", "hello ", true},
		{"comma", "a,b", true},
		{"colon", "a:b", true},
		{"brackets", "a[b]", true},
		{"braces", "a{b}", true},
		{"hash", "a#b", true},
		{"tab", "a\tb", true},
		{"newline", "a\nb", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := needsQuotes(tc.in); got != tc.want {
				t.Errorf("needsQuotes(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeScalarString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"plain", "hello", "hello"},
		{"looks numeric", "42", `"42"`},
		{"looks like float", "3.14", `"3.14"`},
		{"literal true", "true", `"true"`},
		{"literal false", "false", `"false"`},
		{"literal null", "null", `"null"`},
		{"needs quoting", "a,b", `"a,b"`},
		{"embedded quote", `she said "hi"`, `she said "hi"`},
		{"embedded backslash", `a\b`, `a\b`},
		{"tab passes through unescaped inside quotes", "a\tb", "\"a\tb\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeScalarString(tc.in); got != tc.want {
				t.Errorf("encodeScalarString(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeLexeme(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Value
	}{
		{"null", "null", nil},
		{"true", "true", true},
		{"false", "false", false},
		{"integer", "42", int64(42)},
		{"negative integer", "-7", int64(-7)},
		{"float", "3.14", 3.14},
		{"quoted string", `"hello"`, "hello"},
		{"quoted with escapes", `"a\"b\\c"`, `a"b\c`},
		{"bare string", "hello", "hello"},
		{"exponential not numeric", "1e10", "1e10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeLexeme(tc.in)
			if got != tc.want {
				t.Errorf("decodeLexeme(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestScalarRoundTrip(t *testing.T) {
	for _, s := range []string{"hello", "", "a,b", "true", "false", "null", "42", `has "quotes"`, `back\slash`} {
		encoded := encodeScalarString(s)
		decoded := decodeLexeme(encoded)
		got, ok := decoded.(string)
		if !ok || got != s {
			t.Errorf("round trip %q -> %q -> %#v, want %q", s, encoded, decoded, s)
		}
	}
}
