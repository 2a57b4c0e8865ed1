// Command lshbench benchmarks LSH forest approximate nearest neighbor
// search against brute force exact search over growing index sizes,
// reporting recall and query speed up and rendering both as charts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aouyang1/lshbench/bench"
	"github.com/aouyang1/lshbench/chart"
	"github.com/aouyang1/lshbench/dataset"
	"github.com/aouyang1/lshbench/report"
)

const (
	accuracyChart = "accuracy.png"
	speedUpChart  = "speed_up.png"
)

func main() {
	var (
		sizes    = flag.String("sizes", "", "comma separated index sizes to sweep, defaults to 1000,10000,100000,1000000")
		features = flag.Int("features", 0, "number of features per vector, defaults to 100")
		queries  = flag.Int("queries", 0, "number of held out query vectors, defaults to 100")
		k        = flag.Int("k", 0, "neighbors per query, defaults to 10")
		seed     = flag.Uint64("seed", 0, "dataset generation seed")
		out      = flag.String("out", "results", "output directory for the report and charts")
		cacheDir = flag.String("cache", "", "dataset cache directory, defaults to a directory under the system temp dir")
		noPlot   = flag.Bool("no-plot", false, "skip rendering the charts")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := bench.NewDefaultConfig()
	cfg.Seed = *seed
	if *features > 0 {
		cfg.NumFeatures = *features
	}
	if *queries > 0 {
		cfg.NumQueries = *queries
	}
	if *k > 0 {
		cfg.NumNeighbors = *k
	}
	if *sizes != "" {
		parsed, err := parseSizes(*sizes)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -sizes")
		}
		cfg.IndexSizes = parsed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	cache := dataset.NewCache(*cacheDir)
	params := dataset.Params{
		NumSamples:  cfg.MaxIndexSize(),
		NumFeatures: cfg.NumFeatures,
		NumQueries:  cfg.NumQueries,
		Seed:        cfg.Seed,
	}
	log.Info().
		Int("samples", params.NumSamples).
		Int("features", params.NumFeatures).
		Int("queries", params.NumQueries).
		Str("cache", cache.Dir).
		Msg("generating blob data")
	data, err := cache.Make(params)
	if err != nil {
		log.Fatal().Err(err).Msg("generating dataset")
	}

	measurements, err := bench.Run(context.Background(), cfg, data)
	if err != nil {
		log.Fatal().Err(err).Msg("running benchmark")
	}

	if err := report.Print(os.Stdout, cfg, measurements); err != nil {
		log.Fatal().Err(err).Msg("printing summary")
	}
	if err := report.Save(*out, cfg, measurements); err != nil {
		log.Fatal().Err(err).Msg("saving report")
	}
	log.Info().Str("path", filepath.Join(*out, report.Filename)).Msg("report saved")

	if *noPlot {
		return
	}
	if err := chart.Accuracy(filepath.Join(*out, accuracyChart), cfg, measurements); err != nil {
		log.Fatal().Err(err).Msg("rendering accuracy chart")
	}
	if err := chart.SpeedUp(filepath.Join(*out, speedUpChart), cfg, measurements); err != nil {
		log.Fatal().Err(err).Msg("rendering speed up chart")
	}
	log.Info().Str("dir", *out).Msg("charts saved")
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing size %q: %w", part, err)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
