// Package report renders benchmark measurements as console and plain text
// tables.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shubhang93/tablewr"

	"github.com/aouyang1/lshbench/bench"
)

const Filename = "lshbench_results.txt"

// Print writes a summary table of every measurement to w, grouped by index
// size in sweep order.
func Print(w io.Writer, cfg *bench.Config, measurements []bench.Measurement) error {
	wr := tablewr.New(w, 0, tablewr.WithSep())

	data := [][]string{
		{"Size", "Tables", "Hyperplanes", fmt.Sprintf("Recall@%d", cfg.NumNeighbors), "Build", "Avg Query", "Speed up"},
	}
	for _, m := range measurements {
		data = append(data, []string{
			fmt.Sprintf("%d", m.IndexSize),
			fmt.Sprintf("%d", m.Setting.NumTables),
			fmt.Sprintf("%d", m.Setting.NumHyperplanes),
			fmt.Sprintf("%.2f", m.Accuracy),
			m.BuildTime.Round(time.Millisecond).String(),
			m.AvgQueryTime.String(),
			fmt.Sprintf("%.1fx", m.SpeedUp),
		})
	}
	return wr.Write(data)
}

// Save writes the summary table to Filename under dir along with a header
// describing the run environment.
func Save(dir string, cfg *bench.Config, measurements []bench.Measurement) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, Filename))
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "LSH Forest Benchmark\n")
	fmt.Fprintf(f, "====================\n")
	fmt.Fprintf(f, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(f, "Platform: %s/%s (%d CPUs, %s)\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.Version())
	fmt.Fprintf(f, "Queries: %d, neighbors per query: %d, features: %d\n\n", cfg.NumQueries, cfg.NumNeighbors, cfg.NumFeatures)

	return Print(f, cfg, measurements)
}
