// Package sim generates synthetic measurement data for noise-correction
// experiments.
//
// A [Generator] produces a "true" base signal from a uniform distribution
// and noise-corrupted derivatives of any signal under an independent
// additive Gaussian noise model:
//
//	g := sim.NewGenerator(sim.WithSeed(42))
//	base, _ := g.Uniform(1000, 8, 12)
//	test, _ := g.Corrupt(base, 0.20)
//
// Corrupting a signal twice with scales s1 and s2 composes the two noise
// layers with combined variance s1²+s2², since every draw is independent.
package sim
