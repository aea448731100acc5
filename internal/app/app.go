package app

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"creditid3/internal/config"
	"creditid3/internal/data"
	"creditid3/internal/features"
	"creditid3/internal/models"
	"creditid3/internal/report"
)

type Splits struct {
	Train      data.Dataset
	Validation data.Dataset
	Test       data.Dataset
}

// LoadSplits reads the training, validation and test files concurrently. The
// first failure cancels the remaining loads.
func LoadSplits(ctx context.Context, cfg config.Config) (Splits, error) {
	var s Splits
	g, gctx := errgroup.WithContext(ctx)
	load := func(path string, dst *data.Dataset) {
		g.Go(func() error {
			ds, err := data.LoadCSVFile(gctx, path, cfg.Dim, cfg.Header, features.ParseRecord)
			if err != nil {
				return err
			}
			*dst = ds
			return nil
		})
	}
	load(cfg.TrainPath, &s.Train)
	load(cfg.ValidationPath, &s.Validation)
	load(cfg.TestPath, &s.Test)
	if err := g.Wait(); err != nil {
		return Splits{}, err
	}
	return s, nil
}

// Result is a trained and pruned tree with its metrics on either side of
// pruning.
type Result struct {
	Tree   *models.DecisionTree
	Before report.Metrics
	After  report.Metrics
	Prunes []models.PruneReport
}

func Evaluate(root *models.Node, s Splits) (report.Metrics, error) {
	m := report.Metrics{Nodes: root.CountNodes(), Leaves: root.CountLeaves(), Depth: root.Depth()}
	var err error
	if m.TrainError, err = models.TestError(root, s.Train); err != nil {
		return m, err
	}
	if m.ValidationError, err = models.TestError(root, s.Validation); err != nil {
		return m, err
	}
	if m.TestError, err = models.TestError(root, s.Test); err != nil {
		return m, err
	}
	return m, nil
}

// Train grows a tree on s.Train, then prunes it against s.Validation.
func Train(s Splits, cfg config.Config, logger *zap.Logger, reporter models.Reporter) (*Result, error) {
	tie, err := models.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, err
	}
	dt := models.NewDecisionTree()
	dt.TieBreak = tie
	dt.Logger = logger
	logger.Info("training", zap.Int("vectors", len(s.Train)), zap.String("tie_break", tie.String()))
	if err := dt.Fit(s.Train); err != nil {
		return nil, err
	}

	res := &Result{Tree: dt}
	if res.Before, err = Evaluate(dt.Root, s); err != nil {
		return nil, err
	}
	logger.Info("trained",
		zap.Int("nodes", res.Before.Nodes),
		zap.Int("depth", res.Before.Depth),
		zap.Float64("train_error", res.Before.TrainError),
		zap.Float64("validation_error", res.Before.ValidationError),
		zap.Float64("test_error", res.Before.TestError),
	)

	p := models.NewPruner(cfg.MaxPrunes)
	p.Logger = logger
	p.Reporter = reporter
	if res.Prunes, err = dt.Prune(p, s.Validation, s.Test); err != nil {
		return nil, err
	}
	if res.After, err = Evaluate(dt.Root, s); err != nil {
		return nil, err
	}
	return res, nil
}
