package strmatch_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
	"github.com/katalvlaran/lvtrace/strmatch"
)

func ExampleKMP() {
	steps, err := strmatch.KMP("ABABDABACDABABCABAB", "ABABCABAB")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(step.Last(steps).Description)
	// Output:
	// KMP complete: 1 match(es) at [10]
}
