package sim

import (
	"errors"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by the generator.
var (
	ErrInvalidSize  = errors.New("sim: sample count must be > 0")
	ErrInvalidRange = errors.New("sim: lower bound must not exceed upper bound")
	ErrNegativeStd  = errors.New("sim: noise standard deviation must be >= 0")
)

// Generator produces synthetic signals and noisy derivatives of them.
//
// The zero value draws from gonum's shared global source; use [WithSeed]
// for deterministic output.
type Generator struct {
	src rand.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets a deterministic random source for all draws.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = rand.NewPCG(seed, seed)
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Uniform draws size independent samples uniformly over [low, high].
//
// A uniform rather than smooth base signal is deliberate: it makes plain
// that individually measured points carry no integrable structure.
func (g *Generator) Uniform(size int, low, high float64) ([]float64, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if low > high {
		return nil, ErrInvalidRange
	}

	u := distuv.Uniform{Min: low, Max: high, Src: g.src}
	out := make([]float64, size)
	for i := range out {
		out[i] = u.Rand()
	}
	return out, nil
}

// Corrupt returns a copy of signal with each sample replaced by a draw
// from Normal(sample, std). The input is never modified. std = 0 returns
// a plain copy (the degenerate noise distribution).
func (g *Generator) Corrupt(signal []float64, std float64) ([]float64, error) {
	if std < 0 {
		return nil, ErrNegativeStd
	}

	out := make([]float64, len(signal))
	copy(out, signal)
	if std == 0 || len(signal) == 0 {
		return out, nil
	}

	// Draw a unit-normal noise vector, scale it to std, add it on.
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: g.src}
	unit := make([]float64, len(signal))
	for i := range unit {
		unit[i] = n.Rand()
	}

	noise := make([]float64, len(signal))
	vecmath.ScaleBlock(noise, unit, std)
	vecmath.AddBlockInPlace(out, noise)

	return out, nil
}
