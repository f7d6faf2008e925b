package candidateset_test

import (
	"fmt"

	"github.com/mirovelk/lozenge-tiling-go/candidateset"
	"github.com/mirovelk/lozenge-tiling-go/vector"
)

func Example() {
	cs := candidateset.New([]vector.Vec3{vector.NewVec3(0, 0, 0)}, candidateset.WithSeed(1))
	fmt.Println(cs.Size())

	cs.Insert(vector.NewVec3(1, 0, 0))
	cs.Remove(vector.NewVec3(0, 0, 0))
	fmt.Println(cs.Size(), cs.Contains(vector.NewVec3(1, 0, 0)))

	cs.Reset()
	fmt.Println(cs.Size(), cs.Contains(vector.NewVec3(0, 0, 0)))

	// Output:
	// 1
	// 1 true
	// 1 true
}
