package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aouyang1/lshbench/bench"
)

func testMeasurements() (*bench.Config, []bench.Measurement) {
	cfg := bench.NewDefaultConfig()
	cfg.IndexSizes = []int{1000, 10000}
	cfg.Settings = []bench.ForestSetting{
		{NumTables: 4, NumHyperplanes: 16},
		{NumTables: 16, NumHyperplanes: 8},
	}

	var ms []bench.Measurement
	for _, size := range cfg.IndexSizes {
		for _, s := range cfg.Settings {
			ms = append(ms, bench.Measurement{
				IndexSize:    size,
				Setting:      s,
				Accuracy:     0.87,
				SpeedUp:      3.2,
				BuildTime:    123 * time.Millisecond,
				AvgQueryTime: 45 * time.Microsecond,
			})
		}
	}
	return cfg, ms
}

func TestPrint(t *testing.T) {
	cfg, ms := testMeasurements()

	var buf bytes.Buffer
	if err := Print(&buf, cfg, ms); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	// one row per measurement plus the header
	if rows := strings.Count(out, "0.87"); rows != len(ms) {
		t.Fatalf("expected %d measurement rows, but got %d", len(ms), rows)
	}
	if !strings.Contains(out, "Recall@10") {
		t.Fatalf("expected recall column header, but got %q", out)
	}
	if !strings.Contains(out, "3.2x") {
		t.Fatalf("expected speed up column, but got %q", out)
	}
}

func TestSave(t *testing.T) {
	cfg, ms := testMeasurements()

	dir := filepath.Join(t.TempDir(), "results")
	if err := Save(dir, cfg, ms); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.Contains(out, "LSH Forest Benchmark") {
		t.Fatalf("expected report header, but got %q", out)
	}
	if rows := strings.Count(out, "0.87"); rows != len(ms) {
		t.Fatalf("expected %d measurement rows, but got %d", len(ms), rows)
	}
}
