package quadratic

import (
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-quadratic/internal/coeffgen"
	"github.com/cwbudde/algo-quadratic/internal/testutil"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    bool
	}{
		{"exact zeros", 0, 0, 0, true},
		{"negative zero", math.Copysign(0, -1), 0, 0, true},
		{"at epsilon", Epsilon, -Epsilon, Epsilon, true},
		{"below epsilon", 1e-17, -1e-17, 1e-20, true},
		{"a above epsilon", 2 * Epsilon, 0, 0, false},
		{"c nonzero", 0, 0, 5, false},
		{"nan", math.NaN(), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.a, tt.b, tt.c); got != tt.want {
				t.Fatalf("IsZero(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestDiscriminant(t *testing.T) {
	tests := []struct {
		a, b, c float64
		want    float64
	}{
		{1, -3, 2, 1},
		{1, 2, 1, 0},
		{1, 0, 1, -4},
		{0, 2, 4, 4},
		{-2, 5, 3, 49},
	}

	for _, tt := range tests {
		if got := Discriminant(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("Discriminant(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestDiscriminantScalesLeadingCoefficientFirst(t *testing.T) {
	// 4*a overflows before the product with c, as in the C evaluation order.
	a, b, c := 1e308, 1e150, 1e-10

	if d := Discriminant(a, b, c); !math.IsInf(d, -1) {
		t.Fatalf("Discriminant(%v, %v, %v) = %v, want -Inf", a, b, c, d)
	}

	for _, mode := range []Mode{ModeLinearFirst, ModeReference} {
		if got := Solve(a, b, c, WithMode(mode)); got.Kind != KindNone {
			t.Fatalf("Solve(%v, %v, %v, %v) = %+v, want none", a, b, c, mode, got)
		}
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    Roots
	}{
		{"identity", 0, 0, 0, Roots{Kind: KindInfinite}},
		{"identity within epsilon", 1e-17, -1e-18, 2e-16, Roots{Kind: KindInfinite}},
		{"constant nonzero", 0, 0, 5, Roots{Kind: KindNone}},
		{"linear", 0, 2, 4, Roots{Kind: KindLinear, X1: -2}},
		{"linear negative slope", 0, -4, 2, Roots{Kind: KindLinear, X1: 0.5}},
		{"two roots", 1, -3, 2, Roots{Kind: KindTwo, X1: 2, X2: 1}},
		{"two roots negative a", -1, 3, -2, Roots{Kind: KindTwo, X1: 1, X2: 2}},
		{"double root", 1, 2, 1, Roots{Kind: KindOne, X1: -1, X2: -1}},
		{"no real roots", 1, 0, 1, Roots{Kind: KindNone}},
		{"tiny a is still quadratic", 2 * Epsilon, 0, 0, Roots{Kind: KindOne}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solve(tt.a, tt.b, tt.c); got != tt.want {
				t.Fatalf("Solve(%v, %v, %v) = %+v, want %+v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestSolveTwoRootsSlotOrder(t *testing.T) {
	// x1 is always (-b + sqrt(d)) / 2a, so with a < 0 it is the smaller root.
	r := Solve(-1, 0, 4)
	if r.Kind != KindTwo {
		t.Fatalf("Kind = %v, want two", r.Kind)
	}

	if r.X1 != -2 || r.X2 != 2 {
		t.Fatalf("roots = (%v, %v), want (-2, 2)", r.X1, r.X2)
	}
}

func TestSolveReferenceMode(t *testing.T) {
	ref := WithMode(ModeReference)

	tests := []struct {
		name    string
		a, b, c float64
		want    Roots
	}{
		{"identity", 0, 0, 0, Roots{Kind: KindInfinite}},
		{"constant nonzero", 0, 0, 5, Roots{Kind: KindNone}},
		// a == 0 makes d = b*b > 0, which never reaches the linear branch.
		{"linear with positive discriminant", 0, 2, 4, Roots{Kind: KindNone}},
		{"linear with negative slope", 0, -3, 6, Roots{Kind: KindNone}},
		{"two roots", 1, -3, 2, Roots{Kind: KindTwo, X1: 2, X2: 1}},
		{"double root", 1, 2, 1, Roots{Kind: KindOne, X1: -1, X2: -1}},
		{"no real roots", 1, 0, 1, Roots{Kind: KindNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solve(tt.a, tt.b, tt.c, ref); got != tt.want {
				t.Fatalf("Solve(%v, %v, %v, reference) = %+v, want %+v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestSolveReferenceModeUnderflowReachesLinear(t *testing.T) {
	// b*b underflows to zero, so d == 0 exactly and a == 0 selects the
	// linear branch.
	b, c := 1e-170, 1.0

	r := Solve(0, b, c, WithMode(ModeReference))
	if r.Kind != KindLinear {
		t.Fatalf("Kind = %v, want linear", r.Kind)
	}

	testutil.RequireBitsEqual(t, "X1", r.X1, -c/b)
}

func TestSolveLinearFirstMatchesReferenceForQuadratics(t *testing.T) {
	g, err := coeffgen.New(coeffgen.WithSeed(11))
	if err != nil {
		t.Fatalf("coeffgen.New: %v", err)
	}

	for range 2000 {
		a, b, c := g.Next()
		if a == 0 {
			continue
		}

		lin := Solve(a, b, c, WithMode(ModeLinearFirst))
		ref := Solve(a, b, c, WithMode(ModeReference))

		if lin != ref {
			t.Fatalf("(%v, %v, %v): linear-first %+v, reference %+v", a, b, c, lin, ref)
		}
	}
}

func TestSolveNonFinite(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"nan a", math.NaN(), 1, 1},
		{"nan c", 1, 1, math.NaN()},
		{"inf times zero", math.Inf(1), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solve(tt.a, tt.b, tt.c); got.Kind != KindNone {
				t.Fatalf("Solve(%v, %v, %v) = %+v, want none", tt.a, tt.b, tt.c, got)
			}
		})
	}
}

func TestSolveRootsSatisfyEquation(t *testing.T) {
	g, err := coeffgen.New(coeffgen.WithSeed(2024), coeffgen.WithRange(-50, 50))
	if err != nil {
		t.Fatalf("coeffgen.New: %v", err)
	}

	for range 5000 {
		a, b, c := g.Next()

		for _, mode := range []Mode{ModeLinearFirst, ModeReference} {
			r := Solve(a, b, c, WithMode(mode))
			for _, x := range r.Values() {
				testutil.RequireRootOf(t, a, b, c, x)
			}

			if r.Kind == KindTwo {
				if r.X1 == r.X2 {
					t.Fatalf("(%v, %v, %v): two roots coincide at %v", a, b, c, r.X1)
				}

				// Vieta: x1 + x2 = -b/a.
				sum := -b / a
				testutil.RequireNearlyEqual(t, "x1+x2", r.X1+r.X2, sum, 1e-9*math.Max(1, math.Abs(sum)))
			}
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	g, _ := coeffgen.New(coeffgen.WithSeed(5))

	for range 200 {
		a, b, c := g.Next()

		first := Solve(a, b, c)
		for range 3 {
			if again := Solve(a, b, c); again != first {
				t.Fatalf("(%v, %v, %v): %+v then %+v", a, b, c, first, again)
			}
		}
	}
}

func TestSolveConcurrent(t *testing.T) {
	triples := [][3]float64{{1, -3, 2}, {1, 2, 1}, {0, 2, 4}, {1, 0, 1}, {0, 0, 0}}

	want := make([]Roots, len(triples))
	for i, tr := range triples {
		want[i] = Solve(tr[0], tr[1], tr[2])
	}

	var wg sync.WaitGroup

	errs := make(chan string, 8)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				for i, tr := range triples {
					if got := Solve(tr[0], tr[1], tr[2]); got != want[i] {
						errs <- got.String()
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent Solve mismatch: %s", e)
	}
}

func TestResidual(t *testing.T) {
	if got := Residual(1, -3, 2, 2); got != 0 {
		t.Fatalf("Residual at root = %v, want 0", got)
	}

	if got := Residual(1, 0, 1, 0); got != 1 {
		t.Fatalf("Residual(1, 0, 1, 0) = %v, want 1", got)
	}

	if got := Residual(2, -1, 3, -2); got != 13 {
		t.Fatalf("Residual(2, -1, 3, -2) = %v, want 13", got)
	}
}
