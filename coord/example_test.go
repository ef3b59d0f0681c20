// File: coord/example_test.go
package coord_test

import (
	"fmt"

	"github.com/katalvlaran/stowage/coord"
)

// ExampleBounds_SlotIndex shows the storage layout: layer by layer, each
// layer row-major.
func ExampleBounds_SlotIndex() {
	b, _ := coord.NewBounds(3, 2, 2)
	fmt.Println(b.SlotIndex(2, 1, 0))
	fmt.Println(b.SlotIndex(0, 0, 1))
	fmt.Println(b.Decode(7))

	// Output:
	// 5
	// 6
	// (1,0,1)
}
