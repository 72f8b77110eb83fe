package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/sorting"
	"github.com/katalvlaran/lvtrace/step"
)

// ExampleBubble shows the sorted boundary markers of a small bubble sort.
func ExampleBubble() {
	steps, err := sorting.Bubble([]int{5, 2, 4, 1, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range steps {
		if s.Type == step.KindSorted || s.Type == step.KindComplete {
			fmt.Println(s.Description)
		}
	}
	// Output:
	// Position 4 holds its final value 5
	// Position 3 holds its final value 4
	// Position 2 holds its final value 3
	// Position 1 holds its final value 2
	// Array sorted: [1 2 3 4 5]
}
