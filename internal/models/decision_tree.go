package models

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"creditid3/internal/data"
)

// Builder grows an ID3 tree: it splits on the entropy-minimizing rule until
// every leaf is label-pure.
type Builder struct {
	TieBreak TieBreak
	Logger   *zap.Logger
}

func NewBuilder() *Builder {
	return &Builder{TieBreak: FirstMinimal, Logger: zap.NewNop()}
}

func (b *Builder) Build(ds data.Dataset) (*Node, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("build: %w", ErrEmptyDataset)
	}
	if b.Logger == nil {
		b.Logger = zap.NewNop()
	}
	return b.build(ds, 0)
}

func (b *Builder) build(ds data.Dataset, depth int) (*Node, error) {
	if label, ok := ds.Pure(); ok {
		return NewLeaf(label, ds), nil
	}

	rule, err := FindBestRule(ds, b.TieBreak)
	if errors.Is(err, ErrNoCandidate) {
		// identical vectors carrying both labels
		leaf := MajorityVote(ds)
		b.Logger.Debug("inseparable subset", zap.Int("depth", depth), zap.Int("size", len(ds)), zap.Int("label", leaf.Label))
		return leaf, nil
	}
	if err != nil {
		return nil, err
	}

	yes, no := ds.Split(rule.Passes)
	if len(yes) == 0 || len(no) == 0 {
		return nil, fmt.Errorf("%w: %s sends %d/%d vectors", ErrDegenerateSplit, rule, len(yes), len(no))
	}
	if ce := b.Logger.Check(zap.DebugLevel, "split"); ce != nil {
		n0, n1 := ds.Labels()
		ce.Write(
			zap.Int("depth", depth),
			zap.Int("feature", rule.Feature),
			zap.Float64("threshold", rule.Threshold),
			zap.Int("yes", len(yes)),
			zap.Int("no", len(no)),
			zap.Float64("gain", Entropy(n0, n1)-ConditionalEntropy(ds, rule)),
		)
	}

	yesNode, err := b.build(yes, depth+1)
	if err != nil {
		return nil, err
	}
	noNode, err := b.build(no, depth+1)
	if err != nil {
		return nil, err
	}
	return NewBranch(rule, yesNode, noNode, ds), nil
}

// DecisionTree adapts a Builder-grown tree to the Model interface.
type DecisionTree struct {
	TieBreak TieBreak
	Logger   *zap.Logger
	Root     *Node
}

func NewDecisionTree() *DecisionTree {
	return &DecisionTree{TieBreak: FirstMinimal, Logger: zap.NewNop()}
}

func (dt *DecisionTree) Name() string { return "ID3(" + dt.TieBreak.String() + ")" }

func (dt *DecisionTree) Fit(train data.Dataset) error {
	b := &Builder{TieBreak: dt.TieBreak, Logger: dt.Logger}
	root, err := b.Build(train)
	if err != nil {
		return err
	}
	dt.Root = root
	return nil
}

func (dt *DecisionTree) Predict(ds data.Dataset) []int {
	return predictAll(dt.Root, ds)
}

// Prune collapses subtrees of the fitted tree with p.
func (dt *DecisionTree) Prune(p *Pruner, validation, test data.Dataset) ([]PruneReport, error) {
	if dt.Root == nil {
		return nil, errors.New("prune: tree not fitted")
	}
	return p.Prune(dt.Root, validation, test)
}
