package hyperbitbit

import (
	"fmt"
	"math/rand"
)

// A fresh sketch reports the estimator's floor value.
func Example() {
	hbb := New()
	fmt.Println(hbb.Cardinality())
	// Output: 1351
}

// Estimate the number of distinct words in a stream. The estimate only
// becomes meaningful once thousands of distinct elements have been seen.
func Example_stream() {
	rng := rand.New(rand.NewSource(1))
	hbb := New()
	for i := 0; i < 50000; i++ {
		hbb.InsertString(randWord(rng, 8))
	}
	fmt.Printf("roughly %d distinct words\n", hbb.Cardinality())
}
