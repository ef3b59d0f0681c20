// File: grouping/example_test.go
package grouping_test

import (
	"fmt"

	"github.com/katalvlaran/stowage/grouping"
)

// ExampleFromExpr classifies containers by weight with an expression.
func ExampleFromExpr() {
	type container struct {
		ID     string
		Weight int
	}
	byWeight, err := grouping.FromExpr[container](`item.Weight >= 20 ? "heavy" : "light"`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(byWeight(container{ID: "c1", Weight: 24}))
	fmt.Println(byWeight(container{ID: "c2", Weight: 3}))

	// Output:
	// heavy
	// light
}
