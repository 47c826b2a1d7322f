package ranking

import (
	"errors"
	"fmt"
	"math"
)

// Default option values shared by every scorer.
const (
	// DefaultDamping is the PageRank damping factor.
	DefaultDamping = 0.85
	// DefaultTol is the convergence threshold on the per-sweep delta.
	DefaultTol = 1e-6
	// DefaultMaxIter caps the number of power-iteration sweeps.
	DefaultMaxIter = 100
)

var (
	// ErrDampingRange indicates a damping factor outside [0, 1].
	ErrDampingRange = errors.New("ranking: damping factor out of range")

	// ErrTolRange indicates a non-positive or NaN convergence tolerance.
	ErrTolRange = errors.New("ranking: tolerance must be positive")

	// ErrMaxIterRange indicates an iteration cap below 1.
	ErrMaxIterRange = errors.New("ranking: iteration cap must be at least 1")

	// ErrSeedRange indicates a seed set naming a node outside the graph,
	// carrying a negative or NaN weight, or summing to zero.
	ErrSeedRange = errors.New("ranking: invalid seed set")

	// ErrNoSeeds indicates a Diffusion call without any seed temperatures.
	ErrNoSeeds = errors.New("ranking: diffusion needs at least one seed")
)

// Options bundles the tuning knobs for the ranking scorers.
// Zero values are not meaningful; start from DefaultOptions or let the
// scorer resolve the functional options itself.
type Options struct {
	// Damping is the probability of following an edge instead of
	// restarting; PageRank only.
	Damping float64

	// Tol stops iteration once the L1 change between sweeps drops
	// below it.
	Tol float64

	// MaxIter bounds the number of sweeps regardless of convergence.
	MaxIter int

	// Seeds maps node IDs to non-negative weights: the restart
	// distribution for PageRank, fixed temperatures for Diffusion.
	// Empty means a uniform restart for PageRank.
	Seeds map[int]float64

	// err records the first malformed option; surfaced by the scorer.
	err error
}

// Option mutates Options in place.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
// damping 0.85, tolerance 1e-6, at most 100 sweeps, no seeds.
func DefaultOptions() Options {
	return Options{
		Damping: DefaultDamping,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
	}
}

// WithDamping sets the PageRank damping factor. Values outside [0, 1]
// are rejected at the scorer call with ErrDampingRange.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: %g not in [0, 1]", ErrDampingRange, d)
			return
		}
		o.Damping = d
	}
}

// WithTol sets the convergence threshold. Non-positive or NaN values
// are rejected at the scorer call with ErrTolRange.
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: got %g", ErrTolRange, tol)
			return
		}
		o.Tol = tol
	}
}

// WithMaxIter sets the sweep cap. Values below 1 are rejected at the
// scorer call with ErrMaxIterRange.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrMaxIterRange, n)
			return
		}
		o.MaxIter = n
	}
}

// WithSeeds sets the seed weights. The map is copied; weight validity
// is checked against the graph at the scorer call.
func WithSeeds(seeds map[int]float64) Option {
	return func(o *Options) {
		if len(seeds) == 0 {
			o.Seeds = nil
			return
		}
		o.Seeds = make(map[int]float64, len(seeds))
		for id, w := range seeds {
			o.Seeds[id] = w
		}
	}
}

// resolve folds functional options over the defaults and surfaces the
// first recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
