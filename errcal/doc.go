// Package errcal recovers the intrinsic error of a predictive model from
// noisy validation data.
//
// Comparing model output against measured "ground truth" overstates the
// model error, because both the model inputs and the test measurements
// carry their own independent Gaussian noise. The naive mean absolute
// difference therefore mixes three contributions: the model's own error
// and the two measurement noise scales.
//
// The correction works on the closed-form expected absolute value of a
// Gaussian variable. For Z ~ Normal(m, σ):
//
//	E[|Z|] = m·erf(m/(√2·σ)) + √2·σ·exp(−m²/(2σ²))/√π
//
// [Corrector.CleanMAE] builds this curve as a function of the offset m
// (the calibration sweep variable h) for the combined known noise scale
// σ = √(σx²+σy²), over h ∈ [0, 5σ], and inverts it by linear
// interpolation at the observed mean absolute difference. The resulting
// h is the bias-corrected estimate of the noise-free difference scale.
//
// Modeling assumption: the observed population MAD is matched against
// the single-pair closed form swept over a synthetic shared offset h,
// even though real pairs have varying unobserved true differences. The
// substitution is empirical, valid when the measurement noise is small
// relative to the signal's dynamic range; it is preserved here exactly
// as the method defines it.
//
// Quadrature helpers ([SubtractQuadrature], [MADToStd]) decompose the
// corrected scale into individual noise components and convert a final
// MAD-based estimate into an equivalent Gaussian standard deviation.
package errcal
