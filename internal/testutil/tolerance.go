package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps || math.IsNaN(diff) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireBitsEqual fails t unless got and want have the same IEEE-754 bits.
func RequireBitsEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Float64bits(got) != math.Float64bits(want) {
		t.Fatalf("%s: got %v (%#016x), want %v (%#016x)",
			name, got, math.Float64bits(got), want, math.Float64bits(want))
	}
}

// RequireRootOf fails t if x does not satisfy a*x^2 + b*x + c = 0 within a
// tolerance relative to the magnitude of the terms.
func RequireRootOf(t *testing.T, a, b, c, x float64) {
	t.Helper()
	if math.IsNaN(x) || math.IsInf(x, 0) {
		t.Fatalf("root of (%v, %v, %v) is not finite: %v", a, b, c, x)
	}
	res := (a*x+b)*x + c
	scale := math.Abs(a*x*x) + math.Abs(b*x) + math.Abs(c)
	if math.Abs(res) > 1e-9*math.Max(1, scale) {
		t.Fatalf("x = %v is not a root of (%v, %v, %v): residual %v", x, a, b, c, res)
	}
}
