package quadratic

import "fmt"

// Kind classifies the real solution set of an equation.
type Kind int

const (
	// KindInfinite marks the identity 0 = 0: every x is a root.
	KindInfinite Kind = iota
	// KindNone marks an equation without real roots.
	KindNone
	// KindOne marks a double root; X1 and X2 hold the same value.
	KindOne
	// KindTwo marks two distinct real roots.
	KindTwo
	// KindLinear marks an equation that degenerated to b*x + c = 0.
	KindLinear
)

// InfiniteCount is the value Count reports for KindInfinite.
const InfiniteCount = -1

// legacyLinearCode is the code the reference driver used for linear roots.
const legacyLinearCode = 3

var kindNames = [...]string{
	KindInfinite: "infinite",
	KindNone:     "none",
	KindOne:      "one",
	KindTwo:      "two",
	KindLinear:   "linear",
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= KindInfinite && k <= KindLinear
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Roots is the outcome of solving one equation. Fields not covered by Kind
// are zero and carry no meaning.
type Roots struct {
	Kind Kind
	X1   float64
	X2   float64
}

// Count returns the number of real roots, or InfiniteCount for KindInfinite.
// A double root counts once.
func (r Roots) Count() int {
	switch r.Kind {
	case KindInfinite:
		return InfiniteCount
	case KindOne, KindLinear:
		return 1
	case KindTwo:
		return 2
	default:
		return 0
	}
}

// Values returns the distinct real roots in slot order.
func (r Roots) Values() []float64 {
	switch r.Kind {
	case KindOne, KindLinear:
		return []float64{r.X1}
	case KindTwo:
		return []float64{r.X1, r.X2}
	default:
		return nil
	}
}

// Code returns the integer the reference solver returned for this outcome:
// -1 for infinitely many roots, 3 for a linear root, otherwise the count.
func (r Roots) Code() int {
	switch r.Kind {
	case KindLinear:
		return legacyLinearCode
	default:
		return r.Count()
	}
}

func (r Roots) String() string {
	switch r.Kind {
	case KindInfinite:
		return "infinite roots"
	case KindNone:
		return "no roots"
	case KindOne:
		return fmt.Sprintf("one root: %g", r.X1)
	case KindTwo:
		return fmt.Sprintf("two roots: %g, %g", r.X1, r.X2)
	case KindLinear:
		return fmt.Sprintf("linear root: %g", r.X1)
	default:
		return r.Kind.String()
	}
}
