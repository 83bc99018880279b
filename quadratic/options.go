package quadratic

import (
	"fmt"
	"strings"
)

// Mode selects how equations with a zero leading coefficient are handled.
type Mode int

const (
	// ModeLinearFirst solves a == 0 as b*x + c = 0 before the discriminant
	// is computed. This is the default.
	ModeLinearFirst Mode = iota
	// ModeReference evaluates the discriminant first. With a == 0 only an
	// exactly zero discriminant reaches the linear branch, so any b whose
	// square does not underflow yields KindNone.
	ModeReference
)

var modeNames = [...]string{
	ModeLinearFirst: "linear-first",
	ModeReference:   "reference",
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= ModeLinearFirst && m <= ModeReference
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode returns the mode named s (case-insensitive).
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Option configures Solve and SolveBatch.
type Option func(*config)

type config struct {
	mode Mode
}

func defaultConfig() config {
	return config{mode: ModeLinearFirst}
}

// WithMode selects the degenerate-equation handling. Unknown modes are ignored.
func WithMode(m Mode) Option {
	return func(c *config) {
		if m.Valid() {
			c.mode = m
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
