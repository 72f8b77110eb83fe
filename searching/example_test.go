package searching_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/searching"
)

// ExampleBinary prints the narrative of a binary search.
func ExampleBinary() {
	steps, _ := searching.Binary([]int{1, 3, 5, 7, 9, 11}, 7)
	for _, s := range steps {
		fmt.Println(s.Type, "|", s.Description)
	}
	// Output:
	// calculate-mid | mid = (0 + 5) / 2 = 2
	// compare | Compare arr[2]=5 with target 7
	// move-right | arr[2]=5 < 7: continue in [3..5]
	// calculate-mid | mid = (3 + 5) / 2 = 4
	// compare | Compare arr[4]=9 with target 7
	// move-left | arr[4]=9 > 7: continue in [3..3]
	// calculate-mid | mid = (3 + 3) / 2 = 3
	// compare | Compare arr[3]=7 with target 7
	// found | Found target 7 at index 3
	// complete | Search finished: target 7 at index 3
}
