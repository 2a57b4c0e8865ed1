// Package bench measures recall and query speed up of approximate nearest
// neighbor search against a brute force exact baseline. Both search paths
// are external libraries and are treated as black boxes, this package only
// times them and scores their agreement.
package bench

import (
	"errors"
	"fmt"
)

const (
	// the forest hashes bucket keys into 16 bits
	MaxNumHyperplanes = 16
)

var (
	ErrNoIndexSizes              = errors.New("no index sizes provided, must have at least 1")
	ErrInvalidIndexSize          = errors.New("invalid index size, must be at least 1")
	ErrInvalidNumFeatures        = errors.New("invalid number of features, must be at least 1")
	ErrInvalidNumQueries         = errors.New("invalid number of queries, must be at least 1")
	ErrInvalidNumNeighbors       = errors.New("invalid number of neighbors, must be at least 1")
	ErrNoSettings                = errors.New("no forest settings provided, must have at least 1")
	ErrInvalidNumTables          = errors.New("invalid number of tables, must be at least 1")
	ErrInvalidNumHyperplanes     = errors.New("invalid number of hyperplanes, must be at least 1")
	ErrExceededMaxNumHyperplanes = fmt.Errorf("number of hyperplanes exceeded max of, %d", MaxNumHyperplanes)
)

// ForestSetting represents one hyper parameter setting of the LSH forest
// under measurement. More tables widen the candidate pool and raise recall,
// more hyperplanes sharpen buckets and cut the number of direct comparisons.
type ForestSetting struct {
	NumTables      int `json:"num_tables"`
	NumHyperplanes int `json:"num_hyperplanes"`
}

// Validate returns an error if any part of the forest setting is invalid
func (s ForestSetting) Validate() error {
	if s.NumTables < 1 {
		return ErrInvalidNumTables
	}
	if s.NumHyperplanes < 1 {
		return ErrInvalidNumHyperplanes
	}
	if s.NumHyperplanes > MaxNumHyperplanes {
		return ErrExceededMaxNumHyperplanes
	}
	return nil
}

// Label returns the legend text used for this setting in reports and charts
func (s ForestSetting) Label() string {
	return fmt.Sprintf("tables=%d, hyperplanes=%d", s.NumTables, s.NumHyperplanes)
}

// Config represents the full benchmark run matrix
type Config struct {
	IndexSizes   []int           `json:"index_sizes"`
	NumFeatures  int             `json:"num_features"`
	NumQueries   int             `json:"num_queries"`
	NumNeighbors int             `json:"num_neighbors"`
	Settings     []ForestSetting `json:"settings"`
	Seed         uint64          `json:"seed"`
}

// NewDefaultConfig returns the run matrix the benchmark was designed around,
// sweeping index sizes by decades while the forest settings trade tables for
// hyperplanes.
func NewDefaultConfig() *Config {
	return &Config{
		IndexSizes:   []int{1000, 10000, 100000, 1000000},
		NumFeatures:  100,
		NumQueries:   100,
		NumNeighbors: 10,
		Settings: []ForestSetting{
			{NumTables: 4, NumHyperplanes: 16},
			{NumTables: 8, NumHyperplanes: 12},
			{NumTables: 16, NumHyperplanes: 8},
		},
		Seed: 0,
	}
}

// Validate returns an error if any part of the benchmark configuration is
// invalid
func (c *Config) Validate() error {
	if len(c.IndexSizes) == 0 {
		return ErrNoIndexSizes
	}
	for _, size := range c.IndexSizes {
		if size < 1 {
			return ErrInvalidIndexSize
		}
	}
	if c.NumFeatures < 1 {
		return ErrInvalidNumFeatures
	}
	if c.NumQueries < 1 {
		return ErrInvalidNumQueries
	}
	if c.NumNeighbors < 1 {
		return ErrInvalidNumNeighbors
	}
	if len(c.Settings) == 0 {
		return ErrNoSettings
	}
	for _, s := range c.Settings {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MaxIndexSize returns the largest configured index size, which is the
// number of index vectors the dataset must provide
func (c *Config) MaxIndexSize() int {
	var max int
	for _, size := range c.IndexSizes {
		if size > max {
			max = size
		}
	}
	return max
}
