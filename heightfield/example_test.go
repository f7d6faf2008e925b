package heightfield_test

import (
	"fmt"

	"github.com/mirovelk/lozenge-tiling-go/heightfield"
	"github.com/mirovelk/lozenge-tiling-go/vector"
)

func Example() {
	hf := heightfield.New()
	col := vector.NewVec2(0, 0)

	hf.Increment(col)
	hf.Increment(col)
	fmt.Println(hf.Get(col), hf.BoxCount())

	hf.Decrement(col)
	fmt.Println(hf.Get(col), hf.BoxCount())

	// Output:
	// 1 2
	// 0 1
}
