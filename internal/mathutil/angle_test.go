package mathutil

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi becomes pi", -math.Pi, math.Pi},
		{"full turn", 2 * math.Pi, 0},
		{"just past pi", math.Pi + 0.1, -math.Pi + 0.1},
		{"just before minus pi", -math.Pi - 0.1, math.Pi - 0.1},
		{"several turns", 7*math.Pi + 0.25, -math.Pi + 0.25},
		{"negative several turns", -5*math.Pi/2, -math.Pi / 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAngle(tc.in)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%.4f) = %.6f, want %.6f", tc.in, got, tc.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%.4f) = %.6f is outside (-Pi, Pi]", tc.in, got)
			}
		})
	}
}

func TestNormalizeAngleRange(t *testing.T) {
	for a := -20.0; a <= 20.0; a += 0.037 {
		got := NormalizeAngle(a)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("NormalizeAngle(%.4f) = %.6f is outside (-Pi, Pi]", a, got)
		}
		if d := math.Remainder(got-a, 2*math.Pi); math.Abs(d) > 1e-9 {
			t.Fatalf("NormalizeAngle(%.4f) = %.6f is not the same direction", a, got)
		}
	}
}

func TestWrapFloat(t *testing.T) {
	if got := WrapFloat(805, 800); got != 5 {
		t.Errorf("WrapFloat(805, 800) = %v, want 5", got)
	}
	if got := WrapFloat(-5, 800); got != 795 {
		t.Errorf("WrapFloat(-5, 800) = %v, want 795", got)
	}
	if got := Clamp(3, 0, 2); got != 2 {
		t.Errorf("Clamp(3, 0, 2) = %v, want 2", got)
	}
}
