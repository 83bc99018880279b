// Package quadratic classifies and solves a*x^2 + b*x + c = 0 over float64
// coefficients.
//
// [Solve] reports one of five outcomes as a [Roots] value: every coefficient
// zero (infinitely many roots), no real root, a double root, two distinct
// roots, or a degenerate linear root. Coefficients within [Epsilon] of zero
// are treated as zero only when deciding whether the equation is the
// identity 0 = 0; every other branch compares against exact zero.
//
// By default an equation with a == 0 is solved as b*x + c = 0 before the
// discriminant is evaluated. WithMode(ModeReference) restores the reference
// branch order, in which a == 0 reaches the linear branch only when the
// discriminant is exactly zero and otherwise reports no roots.
//
// All functions are pure and safe for concurrent use.
package quadratic
