package errcal

import "math"

// madToStdRatio converts a mean absolute deviation into the standard
// deviation of a zero-mean Gaussian with the same MAD. The value is
// √(π/2) rounded to the precision the method was calibrated with.
const madToStdRatio = 1.2535

// SubtractQuadrature isolates one unknown noise component from a total
// combined scale: √(total² − Σ knownᵢ²). A negative radicand means the
// known components already exceed the observed variability, violating
// the model assumptions; it is reported as [ErrNegativeRadicand] rather
// than clamped. Use [SubtractQuadratureClamped] to opt into clamping.
func SubtractQuadrature(total float64, known ...float64) (float64, error) {
	r := total * total
	for _, k := range known {
		r -= k * k
	}
	if r < 0 {
		return 0, ErrNegativeRadicand
	}
	return math.Sqrt(r), nil
}

// SubtractQuadratureClamped is SubtractQuadrature with the radicand
// clamped at zero, for callers that prefer a floor estimate over an
// error when the known components dominate.
func SubtractQuadratureClamped(total float64, known ...float64) float64 {
	r := total * total
	for _, k := range known {
		r -= k * k
	}
	if r < 0 {
		return 0
	}
	return math.Sqrt(r)
}

// MADToStd converts a final single-source mean-absolute-difference
// estimate into the standard deviation of an equivalent zero-mean
// Gaussian error distribution. It must only be applied to final
// estimates, never inside the curve inversion.
func MADToStd(mad float64) float64 {
	return madToStdRatio * mad
}
