package quadratic

import "math"

// Epsilon is the float64 machine epsilon. Coefficients whose magnitude does
// not exceed it count as zero in IsZero.
const Epsilon = 0x1p-52

// IsZero reports whether a, b and c all lie within Epsilon of zero.
func IsZero(a, b, c float64) bool {
	return math.Abs(a) <= Epsilon && math.Abs(b) <= Epsilon && math.Abs(c) <= Epsilon
}

// Discriminant returns b*b - (4*a)*c. Each product is rounded on its own so
// the result matches Discriminants bit for bit; 4*a overflows to Inf for
// |a| above MaxFloat64/4.
func Discriminant(a, b, c float64) float64 {
	return combine(float64(b*b), float64(float64(4*a)*c))
}

// combine forms the discriminant from the rounded products b*b and (4*a)*c.
func combine(bb, ac4 float64) float64 {
	return bb - ac4
}

// Solve classifies a*x^2 + b*x + c = 0 and returns its real roots.
func Solve(a, b, c float64, opts ...Option) Roots {
	cfg := applyOptions(opts)

	if IsZero(a, b, c) {
		return Roots{Kind: KindInfinite}
	}

	if cfg.mode == ModeLinearFirst && a == 0 {
		return solveLinear(b, c)
	}

	return classify(a, b, c, Discriminant(a, b, c))
}

// classify applies the reference branch order to a non-identity equation
// with discriminant d.
func classify(a, b, c, d float64) Roots {
	switch {
	case d == 0:
		if a != 0 {
			x := -b / 2 / a
			return Roots{Kind: KindOne, X1: x, X2: x}
		}

		return solveLinear(b, c)
	case d > 0:
		if a == 0 {
			return Roots{Kind: KindNone}
		}

		sq := math.Sqrt(d)

		return Roots{
			Kind: KindTwo,
			X1:   (-b + sq) / 2 / a,
			X2:   (-b - sq) / 2 / a,
		}
	default:
		// d < 0, or NaN from non-finite coefficients.
		return Roots{Kind: KindNone}
	}
}

func solveLinear(b, c float64) Roots {
	if b == 0 {
		return Roots{Kind: KindNone}
	}

	return Roots{Kind: KindLinear, X1: -c / b}
}

// Residual evaluates a*x^2 + b*x + c at x using Horner's method.
func Residual(a, b, c, x float64) float64 {
	return (a*x+b)*x + c
}
