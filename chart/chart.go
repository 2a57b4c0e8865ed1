// Package chart renders the benchmark grid as PNG figures, one accuracy
// chart and one speed up chart, each with a series per forest setting over
// a log scaled index size axis.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aouyang1/lshbench/bench"
)

var ErrNoMeasurements = errors.New("no measurements to chart")

// Accuracy writes the recall vs index size chart to path
func Accuracy(path string, cfg *bench.Config, measurements []bench.Measurement) error {
	p, err := newSizePlot(cfg, measurements, func(m bench.Measurement) float64 { return m.Accuracy })
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("Recall of first %d neighbors with index size", cfg.NumNeighbors)
	p.Y.Label.Text = fmt.Sprintf("Recall@%d", cfg.NumNeighbors)
	p.Y.Min = 0
	p.Y.Max = 1.3

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// SpeedUp writes the speed up vs index size chart to path
func SpeedUp(path string, cfg *bench.Config, measurements []bench.Measurement) error {
	p, err := newSizePlot(cfg, measurements, func(m bench.Measurement) float64 { return m.SpeedUp })
	if err != nil {
		return err
	}
	p.Title.Text = "Relationship between speed up and index size"
	p.Y.Label.Text = "Speed up"
	p.Y.Min = 0

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

func newSizePlot(cfg *bench.Config, measurements []bench.Measurement, value func(bench.Measurement) float64) (*plot.Plot, error) {
	if len(measurements) == 0 {
		return nil, ErrNoMeasurements
	}

	p := plot.New()
	p.X.Label.Text = "Index size"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	// one series per configured setting, in config order
	args := make([]interface{}, 0, 2*len(cfg.Settings))
	for _, setting := range cfg.Settings {
		xys := make(plotter.XYs, 0, len(cfg.IndexSizes))
		for _, m := range measurements {
			if m.Setting != setting {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(m.IndexSize), Y: value(m)})
		}
		if len(xys) == 0 {
			continue
		}
		args = append(args, setting.Label(), xys)
	}

	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, err
	}
	return p, nil
}
