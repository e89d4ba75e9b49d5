package stats_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/stats"
)

// ExampleNew estimates the threshold of a 20×20 grid from 30 seeded trials
// on four workers.
func ExampleNew() {
	e, err := stats.New(20, 30, stats.WithSeed(2024), stats.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("trials:", e.Trials())
	fmt.Println("interval holds mean:", e.ConfidenceLo() <= e.Mean() && e.Mean() <= e.ConfidenceHi())
	fmt.Println("plausible:", e.Mean() > 0.5 && e.Mean() < 0.7)

	// Output:
	// trials: 30
	// interval holds mean: true
	// plausible: true
}

// ExampleEstimator_Stddev shows the single-trial convention.
func ExampleEstimator_Stddev() {
	e, _ := stats.New(1, 1)
	fmt.Printf("mean=%.2f stddev=%.2f\n", e.Mean(), e.Stddev())

	// Output:
	// mean=1.00 stddev=0.00
}
