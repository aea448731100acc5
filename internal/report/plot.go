package report

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"creditid3/internal/models"
)

// PlotPruning charts validation and test error from the unpruned tree (step
// 0) through each accepted prune.
func PlotPruning(path string, before Metrics, prunes []models.PruneReport) error {
	val := make(plotter.XYs, 0, len(prunes)+1)
	test := make(plotter.XYs, 0, len(prunes)+1)
	val = append(val, plotter.XY{X: 0, Y: before.ValidationError})
	test = append(test, plotter.XY{X: 0, Y: before.TestError})
	for _, p := range prunes {
		val = append(val, plotter.XY{X: float64(p.Step), Y: p.ValidationError})
		test = append(test, plotter.XY{X: float64(p.Step), Y: p.TestError})
	}

	p := plot.New()
	p.Title.Text = "Reduced-error pruning"
	p.X.Label.Text = "Accepted prunes"
	p.Y.Label.Text = "Error rate"
	p.Y.Min = 0
	if err := plotutil.AddLinePoints(p, "Validation", val, "Test", test); err != nil {
		return err
	}
	return save(p, path)
}

// PlotCurve charts train and test error against training-set size.
func PlotCurve(path string, sizes []int, trainErr, testErr []float64) error {
	toXY := func(xs []int, ys []float64) plotter.XYs {
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			pts[i].X = float64(xs[i])
			pts[i].Y = ys[i]
		}
		return pts
	}

	p := plot.New()
	p.Title.Text = "Learning curve"
	p.X.Label.Text = "Training vectors"
	p.Y.Label.Text = "Error rate"
	p.Y.Min = 0
	p.Y.Max = 1
	if err := plotutil.AddLinePoints(p, "Train", toXY(sizes, trainErr), "Test", toXY(sizes, testErr)); err != nil {
		return err
	}
	return save(p, path)
}

func save(p *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
