package tilt

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestParseEasing_Accepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty is default", ""},
		{"default", DefaultEasing},
		{"default without closing paren", "cubic-bezier(0.03,0.98,0.52,0.99"},
		{"linear", "linear"},
		{"css ease", "ease"},
		{"css ease-in-out", "ease-in-out"},
		{"gween name", "inOutCubic"},
		{"gween name upper", "OUTBOUNCE"},
		{"padded", "  ease-out  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := ParseEasing(tt.input)
			if err != nil {
				t.Fatalf("ParseEasing(%q): %v", tt.input, err)
			}
			if got := fn(0, 0, 1, 1); math.Abs(float64(got)) > 1e-5 {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := fn(1, 0, 1, 1); math.Abs(float64(got)-1) > 1e-5 {
				t.Errorf("f(1) = %v, want 1", got)
			}
		})
	}
}

func TestParseEasing_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown", "wobbly"},
		{"too few values", "cubic-bezier(0.1, 0.2, 0.3)"},
		{"too many values", "cubic-bezier(0.1, 0.2, 0.3, 0.4, 0.5)"},
		{"not a number", "cubic-bezier(a, 0, 1, 1)"},
		{"x1 out of range", "cubic-bezier(1.5, 0, 0.5, 1)"},
		{"x2 negative", "cubic-bezier(0.5, 0, -0.1, 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEasing(tt.input); err == nil {
				t.Errorf("ParseEasing(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestParseEasing_NamedMatchesGween(t *testing.T) {
	fn, err := ParseEasing("linear")
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float32{0.1, 0.5, 0.9} {
		if got, want := fn(x, 2, 4, 1), ease.Linear(x, 2, 4, 1); got != want {
			t.Errorf("linear(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCubicBezier_LinearCurve(t *testing.T) {
	fn := CubicBezier(0, 0, 1, 1)
	for _, x := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		if got := fn(x, 0, 1, 1); math.Abs(float64(got-x)) > 1e-4 {
			t.Errorf("f(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestCubicBezier_ScalesToRange(t *testing.T) {
	fn := CubicBezier(0, 0, 1, 1)
	// Half way through a 2s tween from 10 to 30.
	if got := fn(1, 10, 20, 2); math.Abs(float64(got)-20) > 1e-3 {
		t.Errorf("f = %v, want 20", got)
	}
	// Zero duration jumps to the end value.
	if got := fn(0, 10, 20, 0); got != 30 {
		t.Errorf("zero duration f = %v, want 30", got)
	}
}

func TestCubicBezier_Monotonic(t *testing.T) {
	curves := map[string]ease.TweenFunc{
		"default":     CubicBezier(0.03, 0.98, 0.52, 0.99),
		"ease":        CubicBezier(0.25, 0.1, 0.25, 1),
		"ease-in-out": CubicBezier(0.42, 0, 0.58, 1),
		"flat start":  CubicBezier(0, 0, 0, 1),
	}
	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			prev := float32(-1)
			for i := 0; i <= 100; i++ {
				x := float32(i) / 100
				y := fn(x, 0, 1, 1)
				if y < prev-1e-5 {
					t.Fatalf("f(%v) = %v < f(prev) = %v", x, y, prev)
				}
				prev = y
			}
		})
	}
}

func TestCubicBezier_DefaultIsFastOut(t *testing.T) {
	fn, err := ParseEasing("")
	if err != nil {
		t.Fatal(err)
	}
	// The default curve covers most of the distance early.
	if got := fn(0.25, 0, 1, 1); got < 0.7 {
		t.Errorf("f(0.25) = %v, want >= 0.7", got)
	}
}

func TestNewTransition(t *testing.T) {
	tr, err := NewTransition(300, "ease-out")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Duration != 300 || tr.Easing != "ease-out" || tr.fn == nil {
		t.Errorf("NewTransition = %+v", tr)
	}
	if _, err := NewTransition(300, "nope"); err == nil {
		t.Error("expected error for unknown easing")
	}
}
