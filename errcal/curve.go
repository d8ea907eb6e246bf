package errcal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ExpectedAbsDiff returns E[|Z|] for Z ~ Normal(m, sigma):
//
//	E[|Z|] = m·erf(m/(√2·σ)) + √2·σ·exp(−m²/(2σ²))/√π
//
// This is the forward model: the expected absolute difference of two
// noisy observations whose true values differ by m, under combined
// Gaussian noise of scale sigma. The expression is even in m. As
// sigma → 0 it degenerates to |m|, handled explicitly to avoid the
// 0/0 in the m/σ terms.
func ExpectedAbsDiff(m, sigma float64) float64 {
	if sigma == 0 {
		return math.Abs(m)
	}

	z := m / (math.Sqrt2 * sigma)
	return m*math.Erf(z) + math.Sqrt2*sigma*math.Exp(-z*z)/math.SqrtPi
}

// Curve is the sampled expected-MAD curve for a fixed combined noise
// scale: Phi[i] = ExpectedAbsDiff(H[i], sigma). Both H and Phi are
// strictly increasing over the sampled domain, which makes the curve
// invertible by interpolation; [Curve.Invert] rejects tables that break
// that invariant.
type Curve struct {
	H   []float64
	Phi []float64
}

// BuildCurve samples the expected-MAD curve for the given combined noise
// scale over [0, SpanSigmas·sigma] at TableSize uniformly spaced points.
//
// A zero sigma degenerates the curve to the identity map Phi = H,
// sampled over a unit span so the table keeps a strictly increasing
// domain and stays invertible.
func (c *Corrector) BuildCurve(sigma float64) (Curve, error) {
	if sigma < 0 {
		return Curve{}, ErrNegativeSigma
	}

	h := make([]float64, c.cfg.TableSize)
	if sigma == 0 {
		floats.Span(h, 0, 1)
		phi := make([]float64, len(h))
		copy(phi, h)
		return Curve{H: h, Phi: phi}, nil
	}

	floats.Span(h, 0, c.cfg.SpanSigmas*sigma)

	phi := make([]float64, len(h))
	for i, m := range h {
		phi[i] = ExpectedAbsDiff(m, sigma)
	}

	return Curve{H: h, Phi: phi}, nil
}

// Invert maps an observed mean absolute difference back to the offset h
// that produces it, by linear interpolation on the sampled curve.
//
// Observations outside [Phi[0], Phi[last]] are rejected with
// [ErrOutOfDomain]: the physical model gives no monotonicity guarantee
// beyond the sampled domain, so extrapolation would be meaningless.
func (cv Curve) Invert(phiObs float64) (float64, error) {
	n := len(cv.Phi)
	if n < 2 || len(cv.H) != n {
		return 0, errors.New("errcal: curve must hold at least two (h, phi) pairs")
	}
	if phiObs < cv.Phi[0] || phiObs > cv.Phi[n-1] {
		return 0, ErrOutOfDomain
	}

	// Fit panics on a non-strictly-increasing domain, so validate first.
	for i := 1; i < n; i++ {
		if cv.Phi[i] <= cv.Phi[i-1] {
			return 0, ErrNotMonotonic
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(cv.Phi, cv.H); err != nil {
		return 0, fmt.Errorf("errcal: inverting expected-MAD curve: %w", err)
	}
	return pl.Predict(phiObs), nil
}
