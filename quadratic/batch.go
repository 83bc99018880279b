package quadratic

import (
	"github.com/cwbudde/algo-vecmath"
)

// Discriminants writes b[i]*b[i] - (4*a[i])*c[i] into dst. All slices must
// have the same length. Results equal Discriminant element-wise.
func Discriminants(dst, a, b, c []float64) error {
	if err := validateLengths(len(dst), a, b, c); err != nil {
		return err
	}

	ac4 := make([]float64, len(dst))
	discriminants(dst, ac4, a, b, c)

	return nil
}

// discriminants fills dst using ac4 as scratch. Lengths are not checked.
func discriminants(dst, ac4, a, b, c []float64) {
	if len(dst) == 0 {
		return
	}

	for i, v := range a {
		ac4[i] = 4 * v
	}

	vecmath.MulBlock(dst, b, b)
	vecmath.MulBlockInPlace(ac4, c)

	for i := range dst {
		dst[i] = combine(dst[i], ac4[i])
	}
}

// SolveBatch solves len(dst) equations, the i-th with coefficients a[i],
// b[i], c[i]. Each result equals Solve(a[i], b[i], c[i], opts...).
func SolveBatch(dst []Roots, a, b, c []float64, opts ...Option) error {
	n := len(dst)
	if err := validateLengths(n, a, b, c); err != nil {
		return err
	}

	if n == 0 {
		return nil
	}

	cfg := applyOptions(opts)

	scratch := make([]float64, 2*n)
	d, ac4 := scratch[:n], scratch[n:]
	discriminants(d, ac4, a, b, c)

	for i := range dst {
		switch {
		case IsZero(a[i], b[i], c[i]):
			dst[i] = Roots{Kind: KindInfinite}
		case cfg.mode == ModeLinearFirst && a[i] == 0:
			dst[i] = solveLinear(b[i], c[i])
		default:
			dst[i] = classify(a[i], b[i], c[i], d[i])
		}
	}

	return nil
}
