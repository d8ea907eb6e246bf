package errcal

import (
	"errors"
	"math"
)

// Errors returned by the corrector.
var (
	ErrNegativeSigma    = errors.New("errcal: noise sigma must be >= 0")
	ErrOutOfDomain      = errors.New("errcal: observed MAD outside curve domain")
	ErrNegativeRadicand = errors.New("errcal: quadrature subtraction yields negative radicand")
	ErrNotMonotonic     = errors.New("errcal: curve is not strictly increasing")
)

const (
	defaultTableSize  = 10000
	defaultSpanSigmas = 5.0
)

// Config holds curve-sampling parameters for the corrector.
type Config struct {
	// TableSize is the number of (h, phi) pairs sampled; zero selects 10000.
	TableSize int
	// SpanSigmas is the sweep range in units of the combined noise scale;
	// zero selects 5, which comfortably covers the relevant mass.
	SpanSigmas float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.TableSize <= 1 {
		cfg.TableSize = defaultTableSize
	}
	if cfg.SpanSigmas <= 0 {
		cfg.SpanSigmas = defaultSpanSigmas
	}
	return cfg
}

// Corrector performs bias-corrected error estimation from observed mean
// absolute differences.
type Corrector struct {
	cfg Config
}

// NewCorrector creates a corrector with the given configuration.
// Zero-valued fields fall back to defaults.
func NewCorrector(cfg Config) *Corrector {
	return &Corrector{cfg: normalizeConfig(cfg)}
}

// CleanMAE is a one-shot correction using the default configuration.
func CleanMAE(phiObs, sigmaX, sigmaY float64) (float64, error) {
	return NewCorrector(Config{}).CleanMAE(phiObs, sigmaX, sigmaY)
}

// CleanMAE answers: which combined noise-free difference scale would
// theoretically produce the observed mean absolute difference phiObs,
// given that the two compared signals carry independent Gaussian noise
// of known scales sigmaX and sigmaY?
//
// Only the quadrature sum √(σx²+σy²) of the two scales enters the
// computation, so the result is symmetric in sigmaX and sigmaY. A
// combined scale of zero degenerates the curve to the identity map and
// returns phiObs unchanged.
func (c *Corrector) CleanMAE(phiObs, sigmaX, sigmaY float64) (float64, error) {
	if sigmaX < 0 || sigmaY < 0 {
		return 0, ErrNegativeSigma
	}

	sigma := math.Hypot(sigmaX, sigmaY)
	if sigma == 0 {
		if phiObs < 0 {
			return 0, ErrOutOfDomain
		}
		return phiObs, nil
	}

	curve, err := c.BuildCurve(sigma)
	if err != nil {
		return 0, err
	}
	return curve.Invert(phiObs)
}
