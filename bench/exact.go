package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/vecgo"
)

var ErrNoIndexVectors = errors.New("no index vectors provided")

// Exact holds the ground truth neighbors for every query along with the
// brute force timing they took to compute
type Exact struct {
	Neighbors    [][]uint64
	QueryTimes   []time.Duration
	AvgQueryTime time.Duration
	BuildTime    time.Duration
}

// ExactNeighbors builds a brute force cosine index over the index vectors
// and runs every query against it, timing each query individually. Neighbor
// ids are the row positions of the index vectors.
func ExactNeighbors(ctx context.Context, index, queries [][]float64, k int) (*Exact, error) {
	if len(index) == 0 {
		return nil, ErrNoIndexVectors
	}

	vg, err := vecgo.Flat[uint64](len(index[0])).Cosine().Build()
	if err != nil {
		return nil, fmt.Errorf("building flat index: %w", err)
	}

	buildStart := time.Now()
	items := make([]vecgo.VectorWithData[uint64], len(index))
	for i, v := range index {
		items[i] = vecgo.VectorWithData[uint64]{Vector: toFloat32(v), Data: uint64(i)}
	}
	batch := vg.BatchInsert(ctx, items)
	for _, err := range batch.Errors {
		if err != nil {
			return nil, fmt.Errorf("inserting into flat index: %w", err)
		}
	}

	e := &Exact{
		Neighbors:  make([][]uint64, len(queries)),
		QueryTimes: make([]time.Duration, len(queries)),
	}
	e.BuildTime = time.Since(buildStart)

	for i, q := range queries {
		qv := toFloat32(q)

		t0 := time.Now()
		res, err := vg.KNNSearch(ctx, qv, k)
		e.QueryTimes[i] = time.Since(t0)
		if err != nil {
			return nil, fmt.Errorf("exact query %d: %w", i, err)
		}

		ids := make([]uint64, 0, len(res))
		for _, r := range res {
			ids = append(ids, r.Data)
		}
		e.Neighbors[i] = ids
	}
	e.AvgQueryTime = meanDuration(e.QueryTimes)

	return e, nil
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}
