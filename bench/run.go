package bench

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aouyang1/lshbench/dataset"
)

// Run executes the full benchmark sweep. For every configured index size the
// exact baseline is computed once and every forest setting is measured
// against it over the same queries. Measurements come back row major, index
// size outer and setting inner.
func Run(ctx context.Context, cfg *Config, data *dataset.Data) ([]Measurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxIndexSize() > len(data.Index) {
		return nil, fmt.Errorf("dataset has %d index vectors but the largest configured size is %d", len(data.Index), cfg.MaxIndexSize())
	}
	if cfg.NumQueries > len(data.Queries) {
		return nil, fmt.Errorf("dataset has %d query vectors but %d are configured", len(data.Queries), cfg.NumQueries)
	}
	if len(data.Index) > 0 && len(data.Index[0]) != cfg.NumFeatures {
		return nil, fmt.Errorf("dataset has %d features but %d are configured", len(data.Index[0]), cfg.NumFeatures)
	}
	queries := data.Queries[:cfg.NumQueries]

	measurements := make([]Measurement, 0, len(cfg.IndexSizes)*len(cfg.Settings))
	for _, size := range cfg.IndexSizes {
		log.Info().
			Int("size", size).
			Int("features", cfg.NumFeatures).
			Msg("building brute force baseline")

		exact, err := ExactNeighbors(ctx, data.Index[:size], queries, cfg.NumNeighbors)
		if err != nil {
			return nil, fmt.Errorf("exact baseline at size %d: %w", size, err)
		}
		log.Info().
			Dur("build", exact.BuildTime).
			Dur("avg_query", exact.AvgQueryTime).
			Msg("exact baseline done")

		for _, setting := range cfg.Settings {
			log.Info().
				Int("tables", setting.NumTables).
				Int("hyperplanes", setting.NumHyperplanes).
				Msg("building lsh forest")

			m, err := ApproxNeighbors(data.Index[:size], queries, cfg.NumNeighbors, setting, exact)
			if err != nil {
				return nil, fmt.Errorf("forest %s at size %d: %w", setting.Label(), size, err)
			}
			log.Info().
				Dur("build", m.BuildTime).
				Dur("avg_query", m.AvgQueryTime).
				Float64("accuracy", m.Accuracy).
				Float64("speed_up", m.SpeedUp).
				Msg("forest measured")

			measurements = append(measurements, *m)
		}
	}
	return measurements, nil
}
