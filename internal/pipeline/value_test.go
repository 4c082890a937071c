package pipeline_test

import (
	"math"
	"strings"
	"testing"

	"game-analytics-service/internal/pipeline"
)

// ------------------------------------------------------------
// PARSE KEEPS OBJECT KEY ORDER
// ------------------------------------------------------------
func TestParse_KeepsKeyOrder(t *testing.T) {
	v, err := pipeline.Parse([]byte(`{"zeta":1,"alpha":{"b":2,"a":3},"mid":[true,null,"x"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys := v.Object().Keys()
	want := []string{"zeta", "alpha", "mid"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}

	nested, _ := v.Field("alpha")
	if got := strings.Join(nested.Object().Keys(), ","); got != "b,a" {
		t.Fatalf("expected nested keys b,a, got %s", got)
	}

	out, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(out) != `{"zeta":1,"alpha":{"b":2,"a":3},"mid":[true,null,"x"]}` {
		t.Fatalf("unexpected marshal output: %s", out)
	}
}

// ------------------------------------------------------------
// PARSE ERRORS
// ------------------------------------------------------------
func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{``, `{"a":`, `[1,2`} {
		if _, err := pipeline.Parse([]byte(in)); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

// ------------------------------------------------------------
// DUPLICATE KEYS: LAST VALUE, FIRST POSITION
// ------------------------------------------------------------
func TestParse_DuplicateKeys(t *testing.T) {
	v := pipeline.MustParse(`{"a":1,"b":2,"a":3}`)

	if got := strings.Join(v.Object().Keys(), ","); got != "a,b" {
		t.Fatalf("expected keys a,b, got %s", got)
	}
	a, _ := v.Field("a")
	if f, _ := a.Float(); f != 3 {
		t.Fatalf("expected a=3, got %v", f)
	}
}

// ------------------------------------------------------------
// COERCION
// ------------------------------------------------------------
func TestValue_Float(t *testing.T) {
	tests := []struct {
		name string
		in   pipeline.Value
		want float64
		ok   bool
	}{
		{"number", pipeline.Number(12.5), 12.5, true},
		{"numeric string", pipeline.String(" 42 "), 42, true},
		{"empty string", pipeline.String("  "), 0, false},
		{"text", pipeline.String("abc"), 0, false},
		{"null", pipeline.Null(), 0, false},
		{"bool", pipeline.Bool(true), 0, false},
		{"array", pipeline.Array(pipeline.Number(1)), 0, false},
		{"infinite", pipeline.Number(math.Inf(1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Float()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%v,%v), got (%v,%v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestValue_Coerce(t *testing.T) {
	tests := []struct {
		name string
		in   pipeline.Value
		want float64
		ok   bool
	}{
		{"null", pipeline.Null(), 0, true},
		{"true", pipeline.Bool(true), 1, true},
		{"false", pipeline.Bool(false), 0, true},
		{"blank string", pipeline.String(" "), 0, true},
		{"numeric string", pipeline.String("2.5"), 2.5, true},
		{"text", pipeline.String("abc"), 0, false},
		{"empty array", pipeline.Array(), 0, true},
		{"single number", pipeline.Array(pipeline.Number(4)), 4, true},
		{"single bool", pipeline.Array(pipeline.Bool(true)), 0, false},
		{"two items", pipeline.Array(pipeline.Number(1), pipeline.Number(2)), 0, false},
		{"object", pipeline.MustParse(`{"a":1}`), 0, false},
		{"infinite", pipeline.Number(math.Inf(-1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Coerce()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%v,%v), got (%v,%v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		in   pipeline.Value
		want string
	}{
		{pipeline.String("  US "), "US"},
		{pipeline.Number(3), "3"},
		{pipeline.Number(0.25), "0.25"},
		{pipeline.Bool(false), "false"},
		{pipeline.Null(), ""},
		{pipeline.MustParse(`{"a":1}`), ""},
	}

	for _, tt := range tests {
		if got := tt.in.Text(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

// ------------------------------------------------------------
// FROM ANY SORTS MAP KEYS
// ------------------------------------------------------------
func TestFromAny(t *testing.T) {
	v := pipeline.FromAny(map[string]any{"b": 1, "a": []any{"x", 2.5, nil}})

	out, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(out) != `{"a":["x",2.5,null],"b":1}` {
		t.Fatalf("unexpected output: %s", out)
	}
}
