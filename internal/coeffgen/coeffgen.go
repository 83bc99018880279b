// Package coeffgen draws random integer coefficient triples for exercising
// the quadratic solver.
package coeffgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	defaultLo = -10
	defaultHi = 10
)

var (
	// ErrInvalidRange is returned when the lower bound exceeds the upper bound.
	ErrInvalidRange = errors.New("coeffgen: invalid range")

	// ErrLengthMismatch is returned by Fill for slices of different lengths.
	ErrLengthMismatch = errors.New("coeffgen: slice lengths differ")
)

type config struct {
	lo, hi int
	rng    *rand.Rand
}

func defaultConfig() config {
	return config{lo: defaultLo, hi: defaultHi}
}

// Option configures a [Generator].
type Option func(*config) error

// WithRange sets the inclusive integer range coefficients are drawn from
// (default [-10, 10]). The range may hold at most math.MaxInt values.
func WithRange(lo, hi int) Option {
	return func(cfg *config) error {
		// hi-lo+1 wraps to <= 0 when the width does not fit in an int.
		if lo > hi || hi-lo+1 <= 0 {
			return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
		}

		cfg.lo, cfg.hi = lo, hi

		return nil
	}
}

// WithSeed seeds a PCG source for reproducible sequences.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.rng = rand.New(rand.NewPCG(seed, 0))
		return nil
	}
}

// WithRNG uses rng as the random source.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

// Generator yields coefficient triples. It is not safe for concurrent use.
type Generator struct {
	lo, hi int
	rng    *rand.Rand
}

// New returns a generator configured by opts. Without WithSeed or WithRNG
// the source is seeded randomly.
func New(opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Generator{lo: cfg.lo, hi: cfg.hi, rng: cfg.rng}, nil
}

// Range returns the inclusive bounds coefficients are drawn from.
func (g *Generator) Range() (lo, hi int) {
	return g.lo, g.hi
}

// Next returns the next triple (a, b, c).
func (g *Generator) Next() (a, b, c float64) {
	return g.draw(), g.draw(), g.draw()
}

// Fill overwrites a, b and c with successive triples.
func (g *Generator) Fill(a, b, c []float64) error {
	if len(a) != len(b) || len(a) != len(c) {
		return fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(a), len(b), len(c))
	}

	for i := range a {
		a[i], b[i], c[i] = g.Next()
	}

	return nil
}

func (g *Generator) draw() float64 {
	return float64(g.lo + g.rng.IntN(g.hi-g.lo+1))
}
