package sim_test

import (
	"fmt"

	"github.com/cwbudde/algo-errcal/sim"
)

func ExampleGenerator_Uniform() {
	g := sim.NewGenerator(sim.WithSeed(1))
	base, _ := g.Uniform(1000, 8, 12)

	inRange := true
	for _, v := range base {
		if v < 8 || v > 12 {
			inRange = false
		}
	}
	fmt.Printf("len=%d inRange=%v\n", len(base), inRange)

	// Output:
	// len=1000 inRange=true
}

func ExampleGenerator_Corrupt() {
	g := sim.NewGenerator(sim.WithSeed(1))
	base, _ := g.Uniform(4, 10, 10)
	exact, _ := g.Corrupt(base, 0)

	fmt.Printf("len=%d exactCopy=%v\n", len(exact), exact[0] == base[0])

	// Output:
	// len=4 exactCopy=true
}
