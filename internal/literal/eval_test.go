package literal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEval_Scalars(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    any
	}{
		{"double quoted string", `"hello"`, "hello"},
		{"single quoted string", `'world'`, "world"},
		{"empty quoted string", `""`, ""},
		{"empty literal is empty string", ``, ""},
		{"whitespace literal is empty string", "  \t\n", ""},
		{"string with escapes", `"a\tb\nc\\d\"e"`, "a\tb\nc\\d\"e"},
		{"single quote escape", `'it\'s'`, "it's"},
		{"dollar escape", `"\$HOME"`, "$HOME"},
		{"unicode escape", "\"\\u00e9\"", "é"},
		{"surrogate pair escape", "\"\\ud83d\\ude00\"", "😀"},
		{"integer", `42`, int64(42)},
		{"negative integer", `-7`, int64(-7)},
		{"explicit positive integer", `+3`, int64(3)},
		{"zero", `0`, int64(0)},
		{"float", `3.14`, 3.14},
		{"negative float", `-0.5`, -0.5},
		{"exponent", `1e3`, 1000.0},
		{"signed exponent", `2.5E-2`, 0.025},
		{"integer beyond int64 becomes float", `92233720368547758080`, 92233720368547758080.0},
		{"true", `true`, true},
		{"false", `false`, false},
		{"null", `null`, nil},
		{"surrounding whitespace", `  42  `, int64(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.literal)
			if err != nil {
				t.Fatalf("Eval(%q) error = %v", tt.literal, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tt.literal, diff)
			}
		})
	}
}

func TestEval_Collections(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    any
	}{
		{"empty list", `[]`, []any{}},
		{"flat list", `[1, 2, 3]`, []any{int64(1), int64(2), int64(3)}},
		{"mixed list", `["a", 1, true, null]`, []any{"a", int64(1), true, nil}},
		{"nested list", `[[1, 2], [3]]`, []any{[]any{int64(1), int64(2)}, []any{int64(3)}}},
		{"empty bracket mapping", `[:]`, map[string]any{}},
		{"bracket mapping bareword keys", `[host: "db1", port: 5432]`, map[string]any{"host": "db1", "port": int64(5432)}},
		{"bracket mapping quoted keys", `['a': 1, "b": 2]`, map[string]any{"a": int64(1), "b": int64(2)}},
		{"empty brace mapping", `{}`, map[string]any{}},
		{"brace mapping", `{retries: 3, verbose: false}`, map[string]any{"retries": int64(3), "verbose": false}},
		{"nested mapping", `{db: {host: "x", ports: [1, 2]}}`, map[string]any{"db": map[string]any{"host": "x", "ports": []any{int64(1), int64(2)}}}},
		{"list of mappings", `[[a: 1], [a: 2]]`, []any{map[string]any{"a": int64(1)}, map[string]any{"a": int64(2)}}},
		{"duplicate mapping key is last-wins", `{a: 1, a: 2}`, map[string]any{"a": int64(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.literal)
			if err != nil {
				t.Fatalf("Eval(%q) error = %v", tt.literal, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tt.literal, diff)
			}
		})
	}
}

func TestEval_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		literal string
	}{
		{"bare identifier", `someVariable`},
		{"unterminated string", `"abc`},
		{"unterminated list", `[1, 2`},
		{"trailing characters", `42 extra`},
		{"unknown escape", `"\q"`},
		{"truncated unicode escape", `"\u12"`},
		{"lone comma in list", `[1,]`},
		{"missing mapping value", `{a: }`},
		{"missing mapping key", `{: 1}`},
		{"arithmetic is not a literal", `1 + 2`},
		{"method call is not a literal", `"a".length()`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.literal)
			if err == nil {
				t.Fatalf("Eval(%q) expected an error", tt.literal)
			}

			var invalid *InvalidLiteralError
			if !errors.As(err, &invalid) {
				t.Fatalf("Eval(%q) error = %T, want *InvalidLiteralError", tt.literal, err)
			}
			if invalid.Literal != tt.literal {
				t.Errorf("error.Literal = %q, want %q", invalid.Literal, tt.literal)
			}
		})
	}
}

func TestEval_NullDistinctFromEmptyString(t *testing.T) {
	empty, err := Eval(``)
	if err != nil {
		t.Fatalf("Eval(\"\") error = %v", err)
	}
	if empty != "" {
		t.Fatalf("Eval(\"\") = %#v, want empty string", empty)
	}

	null, err := Eval(`null`)
	if err != nil {
		t.Fatalf("Eval(\"null\") error = %v", err)
	}
	if null != nil {
		t.Fatalf("Eval(\"null\") = %#v, want nil", null)
	}
}

func TestQuote_RoundTrip(t *testing.T) {
	values := []any{
		"",
		"plain",
		"with \"quotes\" and \\backslash\\",
		"tab\there\nnewline",
		int64(0),
		int64(-123),
		3.5,
		true,
		false,
		nil,
		[]any{int64(1), "two", 3.0, nil},
		map[string]any{},
		map[string]any{"b": int64(2), "a": []any{true, map[string]any{"x": "y"}}},
	}

	for _, v := range values {
		text, err := Quote(v)
		if err != nil {
			t.Fatalf("Quote(%#v) error = %v", v, err)
		}

		got, err := Eval(text)
		if err != nil {
			t.Fatalf("Eval(Quote(%#v)) = Eval(%q) error = %v", v, text, err)
		}
		if diff := cmp.Diff(v, got); diff != "" {
			t.Errorf("round trip through %q mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestQuote_UnsupportedType(t *testing.T) {
	if _, err := Quote(struct{}{}); err == nil {
		t.Fatal("Quote(struct{}{}) expected an error")
	}
}
