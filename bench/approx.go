package bench

import (
	"fmt"
	"time"

	"github.com/aouyang1/go-lsh/configs"
	"github.com/aouyang1/go-lsh/document"
	"github.com/aouyang1/go-lsh/lsh"
	"github.com/aouyang1/go-lsh/options"
)

// Measurement is one cell of the benchmark grid, the outcome of running a
// single forest setting over a single index size
type Measurement struct {
	IndexSize    int           `json:"index_size"`
	Setting      ForestSetting `json:"setting"`
	Accuracy     float64       `json:"accuracy"`
	SpeedUp      float64       `json:"speed_up"`
	BuildTime    time.Duration `json:"build_time"`
	AvgQueryTime time.Duration `json:"avg_query_time"`
	NumScored    int           `json:"num_scored"`
}

// ApproxNeighbors builds an LSH forest with the given setting over the index
// vectors, runs the same queries used for the exact baseline and scores the
// overlap of the two top k neighbor sets. The forest normalizes vectors in
// place so every vector handed to it is a copy.
func ApproxNeighbors(index, queries [][]float64, k int, setting ForestSetting, exact *Exact) (*Measurement, error) {
	if len(index) == 0 {
		return nil, ErrNoIndexVectors
	}
	if err := setting.Validate(); err != nil {
		return nil, err
	}

	cfg := configs.NewDefaultLSHConfigs()
	cfg.NumTables = setting.NumTables
	cfg.NumHyperplanes = setting.NumHyperplanes
	cfg.VectorLength = len(index[0])

	buildStart := time.Now()
	forest, err := lsh.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("building lsh forest: %w", err)
	}
	for i, v := range index {
		if err := forest.Index(document.NewSimple(uint64(i), 0, clone(v))); err != nil {
			return nil, fmt.Errorf("indexing vector %d: %w", i, err)
		}
	}
	buildTime := time.Since(buildStart)

	// top k by cosine similarity with no score cutoff
	so := options.NewDefaultSearch()
	so.NumToReturn = k
	so.Threshold = 0
	so.SignFilter = options.SignFilter_POS
	so.MaxLag = options.AllLags

	m := &Measurement{
		IndexSize: len(index),
		Setting:   setting,
		BuildTime: buildTime,
	}

	queryTimes := make([]time.Duration, len(queries))
	var accuracy float64
	for i, q := range queries {
		d := document.Simple{Vector: clone(q)}

		t0 := time.Now()
		scores, numScored, err := forest.Search(d, so)
		queryTimes[i] = time.Since(t0)
		if err != nil {
			return nil, fmt.Errorf("approximate query %d: %w", i, err)
		}

		accuracy += Recall(scores.UIDs(), exact.Neighbors[i], k)
		m.NumScored += numScored
	}

	m.Accuracy = accuracy / float64(len(queries))
	m.AvgQueryTime = meanDuration(queryTimes)
	if m.AvgQueryTime > 0 {
		m.SpeedUp = float64(exact.AvgQueryTime) / float64(m.AvgQueryTime)
	}

	return m, nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
