package tiling_test

import (
	"fmt"

	"github.com/mirovelk/lozenge-tiling-go/tiling"
)

func Example() {
	// A non-periodic engine: a genuine octant, draw distance 5 in every
	// direction.
	e := tiling.New(0, 0, 0, 5, 5, 5, tiling.WithSeed(1))

	e.GenerateByAddingOnly(10)
	fmt.Println("boxes:", e.GetPeriodBoxCount())

	e.Reset()
	fmt.Println("boxes after reset:", e.GetPeriodBoxCount())

	// Output:
	// boxes: 10
	// boxes after reset: 0
}

func Example_periodic() {
	// A periodic engine: points are identified under (1, 2, 3).
	e := tiling.New(1, 2, 3, 4, 4, 4, tiling.WithSeed(1))
	e.GenerateWithMarkovChain(50, 0.9)
	fmt.Println("has visible boxes:", len(e.GetBoxVoxels()) > 0)

	// Output:
	// has visible boxes: true
}
