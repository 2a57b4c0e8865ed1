// Package dataset generates synthetic clustered vectors for benchmarking
// nearest neighbor search. Index and query vectors are drawn from the same
// mixture of gaussians and split after shuffling so both sets share a
// distribution.
package dataset

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultCenters is the number of gaussian centers used when none is configured
	DefaultCenters = 100

	// bounding box edge for uniformly drawn cluster centers
	centerBound = 10.0
)

var (
	ErrInvalidNumSamples  = errors.New("invalid number of samples, must be at least 1")
	ErrInvalidNumFeatures = errors.New("invalid number of features, must be at least 1")
	ErrInvalidNumQueries  = errors.New("invalid number of queries, must be at least 1")
	ErrInvalidCenters     = errors.New("invalid number of centers, must not be negative")
)

// Params represents a set of parameters that configure the generated dataset
type Params struct {
	NumSamples  int    `json:"num_samples"`
	NumFeatures int    `json:"num_features"`
	NumQueries  int    `json:"num_queries"`
	Centers     int    `json:"centers"`
	Seed        uint64 `json:"seed"`
}

// Validate returns an error if any of the dataset parameters are invalid
func (p *Params) Validate() error {
	if p.NumSamples < 1 {
		return ErrInvalidNumSamples
	}
	if p.NumFeatures < 1 {
		return ErrInvalidNumFeatures
	}
	if p.NumQueries < 1 {
		return ErrInvalidNumQueries
	}
	if p.Centers < 0 {
		return ErrInvalidCenters
	}
	return nil
}

// Data holds the generated index vectors along with the held out query vectors
type Data struct {
	Index   [][]float64 `json:"index"`
	Queries [][]float64 `json:"queries"`
}

// Make generates NumSamples index vectors and NumQueries query vectors from a
// mixture of Centers unit variance gaussians whose centers are drawn uniformly
// from [-10, 10] in every dimension. Generation is deterministic for a given
// set of parameters.
func Make(p Params) (*Data, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	centers := p.Centers
	if centers == 0 {
		centers = DefaultCenters
	}

	rng := rand.New(rand.NewSource(p.Seed))
	uni := distuv.Uniform{Min: -centerBound, Max: centerBound, Src: rng}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	mu := make([][]float64, centers)
	for i := range mu {
		mu[i] = make([]float64, p.NumFeatures)
		for j := range mu[i] {
			mu[i][j] = uni.Rand()
		}
	}

	// samples are assigned to centers round-robin so cluster sizes differ by
	// at most one, then shuffled before the index/query split
	total := p.NumSamples + p.NumQueries
	rows := make([][]float64, total)
	for i := 0; i < total; i++ {
		c := mu[i%centers]
		row := make([]float64, p.NumFeatures)
		for j := range row {
			row[j] = c[j] + norm.Rand()
		}
		rows[i] = row
	}
	rng.Shuffle(total, func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	return &Data{
		Index:   rows[:p.NumSamples],
		Queries: rows[p.NumSamples:],
	}, nil
}
