package bench

import (
	"github.com/RoaringBitmap/roaring/roaring64"
)

// Recall returns the fraction of the exact top k neighbors the approximate
// search recovered, in [0, 1]. Sets are compared as bitmaps so duplicate ids
// on either side count once.
func Recall(approx, exact []uint64, k int) float64 {
	if k < 1 {
		return 0
	}

	a := roaring64.New()
	a.AddMany(approx)
	e := roaring64.New()
	e.AddMany(exact)

	a.And(e)
	return float64(a.GetCardinality()) / float64(k)
}
