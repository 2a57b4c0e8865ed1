package bench

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// meanDuration averages wall clock samples through gonum so the result is
// stable for long runs regardless of sample magnitude
func meanDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	secs := make([]float64, len(ds))
	for i, d := range ds {
		secs[i] = d.Seconds()
	}
	return time.Duration(stat.Mean(secs, nil) * float64(time.Second))
}
