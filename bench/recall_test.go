package bench

import (
	"testing"
	"time"
)

func TestRecall(t *testing.T) {
	testData := []struct {
		approx []uint64
		exact  []uint64
		k      int

		expected float64
	}{
		{[]uint64{0, 1, 2, 3}, []uint64{0, 1, 2, 3}, 4, 1.0},
		{[]uint64{4, 5, 6, 7}, []uint64{0, 1, 2, 3}, 4, 0.0},
		{[]uint64{0, 1, 6, 7}, []uint64{0, 1, 2, 3}, 4, 0.5},
		{[]uint64{0, 0, 0, 0}, []uint64{0, 1, 2, 3}, 4, 0.25},
		{nil, []uint64{0, 1, 2, 3}, 4, 0.0},
		{[]uint64{0, 1}, []uint64{0, 1, 2, 3}, 4, 0.5},
		{[]uint64{0}, []uint64{0}, 0, 0.0},
	}
	for _, td := range testData {
		if r := Recall(td.approx, td.exact, td.k); r != td.expected {
			t.Errorf("expected %.2f, but got %.2f", td.expected, r)
			continue
		}
	}
}

func TestMeanDuration(t *testing.T) {
	testData := []struct {
		durations []time.Duration

		expected time.Duration
	}{
		{nil, 0},
		{[]time.Duration{time.Second}, time.Second},
		{[]time.Duration{time.Second, 3 * time.Second}, 2 * time.Second},
		{[]time.Duration{time.Millisecond, time.Millisecond, 4 * time.Millisecond}, 2 * time.Millisecond},
	}
	for _, td := range testData {
		if m := meanDuration(td.durations); m != td.expected {
			t.Errorf("expected %v, but got %v", td.expected, m)
			continue
		}
	}
}
