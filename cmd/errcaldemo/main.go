// Command errcaldemo demonstrates bias-corrected model-error estimation
// on synthetic data.
//
// Usage:
//
//	errcaldemo [flags]
//
// It simulates a true signal, a model output carrying the model's own
// error plus noise propagated from its inputs, and independently noisy
// test measurements. It then prints the real model MAE, the naive noisy
// comparison, the bias-corrected estimate, and the derived model
// standard deviation, followed by a second demonstration of how
// measurement noise distorts observed population spread.
//
// Examples:
//
//	errcaldemo
//	errcaldemo -n 10000 -seed 1
//	errcaldemo -sigma 0.05 -sigma-x 0.1 -sigma-y 0.1
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-errcal/errcal"
	"github.com/cwbudde/algo-errcal/sim"
	"github.com/cwbudde/algo-errcal/stats/pair"
)

func main() {
	sigma := flag.Float64("sigma", 0.07, "model's own error std, the estimation target")
	sigmaX := flag.Float64("sigma-x", 0.18, "error std propagated from model inputs")
	sigmaY := flag.Float64("sigma-y", 0.20, "error std of each test measurement")
	n := flag.Int("n", 1000, "number of sample points")
	low := flag.Float64("low", 8, "lower bound of the base signal")
	high := flag.Float64("high", 12, "upper bound of the base signal")
	seed := flag.Uint64("seed", 0, "random seed; 0 draws from the shared source")
	flag.Parse()

	if err := run(*sigma, *sigmaX, *sigmaY, *n, *low, *high, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "errcaldemo: %v\n", err)
		os.Exit(1)
	}
}

func run(sigma, sigmaX, sigmaY float64, n int, low, high float64, seed uint64) error {
	var opts []sim.Option
	if seed != 0 {
		opts = append(opts, sim.WithSeed(seed))
	}
	g := sim.NewGenerator(opts...)

	// True signal and its three observed derivatives: test measurements,
	// the model output with only its own error, and the model output as
	// actually available, with input noise on top.
	base, err := g.Uniform(n, low, high)
	if err != nil {
		return err
	}
	test, err := g.Corrupt(base, sigmaY)
	if err != nil {
		return err
	}
	model, err := g.Corrupt(base, sigma)
	if err != nil {
		return err
	}
	noisyModel, err := g.Corrupt(model, sigmaX)
	if err != nil {
		return err
	}

	realMAE, err := pair.MeanAbsDifference(model, base)
	if err != nil {
		return err
	}
	fmt.Printf("MAE (real): %v\n", realMAE)

	naiveMAE, err := pair.MeanAbsDifference(noisyModel, test)
	if err != nil {
		return err
	}
	fmt.Printf("MAE (naive): %v\n", naiveMAE)

	cleanMAE, err := errcal.CleanMAE(naiveMAE, sigmaX, sigmaY)
	if err != nil {
		return err
	}
	fmt.Printf("MAE (corrected): %v\n", cleanMAE)

	fmt.Printf("|naive - real| / |corrected - real| = %v\n",
		math.Abs(naiveMAE-realMAE)/math.Abs(cleanMAE-realMAE))

	fmt.Printf("Model STD: %v\n", errcal.MADToStd(cleanMAE))

	return deltaSigmaDemo(g, n, low, high)
}

// deltaSigmaDemo contrasts the real change in spread between two
// populations with the change observed through noisy measurements.
func deltaSigmaDemo(g *sim.Generator, n int, low, high float64) error {
	const measurementStd = 0.2

	fmt.Printf("\nDelta sigma (observed) vs. delta sigma (real)\n")

	span := (high - low) / 4
	wide, err := g.Uniform(n, low, high)
	if err != nil {
		return err
	}
	narrow, err := g.Uniform(n, low+span, high-span)
	if err != nil {
		return err
	}

	wideStd := stat.PopStdDev(wide, nil)
	narrowStd := stat.PopStdDev(narrow, nil)
	fmt.Printf("STD (real): %v -> %v, diff: %v\n", wideStd, narrowStd, wideStd-narrowStd)

	wideObs, err := g.Corrupt(wide, measurementStd)
	if err != nil {
		return err
	}
	narrowObs, err := g.Corrupt(narrow, measurementStd)
	if err != nil {
		return err
	}

	wideObsStd := stat.PopStdDev(wideObs, nil)
	narrowObsStd := stat.PopStdDev(narrowObs, nil)
	fmt.Printf("STD (observed): %v -> %v, diff: %v\n", wideObsStd, narrowObsStd, wideObsStd-narrowObsStd)

	return nil
}
