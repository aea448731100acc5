package models

import (
	"fmt"

	"go.uber.org/zap"

	"creditid3/internal/data"
)

//go:generate mockgen -destination=mocks/mock_reporter.go -package=mocks creditid3/internal/models Reporter

// PruneReport describes one accepted collapse.
type PruneReport struct {
	Step            int
	Discarded       *Node
	Description     string
	ValidationError float64
	TestError       float64
}

// Reporter is notified of every accepted collapse, in order.
type Reporter interface {
	Pruned(r PruneReport)
}

type ReporterFunc func(r PruneReport)

func (f ReporterFunc) Pruned(r PruneReport) { f(r) }

// DefaultMaxPrunes is the number of collapses the pruner accepts before it
// stops.
const DefaultMaxPrunes = 2

// Pruner performs reduced-error pruning in breadth-first order. A branch child
// is replaced by a majority-vote leaf when that strictly lowers the
// validation error of the whole tree. MaxPrunes <= 0 lifts the budget and the
// pass runs until the queue is exhausted.
type Pruner struct {
	MaxPrunes int
	Reporter  Reporter
	Logger    *zap.Logger
}

func NewPruner(maxPrunes int) *Pruner {
	return &Pruner{MaxPrunes: maxPrunes, Logger: zap.NewNop()}
}

func (p *Pruner) exhausted(accepted int) bool {
	return p.MaxPrunes > 0 && accepted >= p.MaxPrunes
}

// Prune mutates root in place and returns the accepted collapses. The root
// itself is never replaced, only the children of branches.
func (p *Pruner) Prune(root *Node, validation, test data.Dataset) ([]PruneReport, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil tree", data.ErrInvalidInput)
	}
	if len(validation) == 0 {
		return nil, fmt.Errorf("prune: validation: %w", ErrEmptyDataset)
	}
	if len(test) == 0 {
		return nil, fmt.Errorf("prune: test: %w", ErrEmptyDataset)
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	baseline, err := TestError(root, validation)
	if err != nil {
		return nil, fmt.Errorf("prune: %w", err)
	}
	var reports []PruneReport
	queue := []*Node{root}
	for !p.exhausted(len(reports)) && len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.IsLeaf {
			continue
		}
		for _, slot := range []**Node{&node.Yes, &node.No} {
			if p.exhausted(len(reports)) {
				break
			}
			child := *slot
			if child.IsLeaf {
				continue
			}
			*slot = MajorityVote(child.Subset)
			cur, err := TestError(root, validation)
			if err != nil {
				*slot = child
				return reports, fmt.Errorf("prune: %w", err)
			}
			if cur >= baseline {
				*slot = child
				continue
			}
			testErr, err := TestError(root, test)
			if err != nil {
				return reports, fmt.Errorf("prune: %w", err)
			}
			r := PruneReport{
				Step:            len(reports) + 1,
				Discarded:       child,
				Description:     child.String(),
				ValidationError: cur,
				TestError:       testErr,
			}
			reports = append(reports, r)
			baseline = cur
			logger.Info("pruned",
				zap.Int("step", r.Step),
				zap.String("discarded", r.Description),
				zap.Float64("validation_error", cur),
				zap.Float64("test_error", testErr),
			)
			if p.Reporter != nil {
				p.Reporter.Pruned(r)
			}
		}
		queue = append(queue, node.Yes, node.No)
	}
	return reports, nil
}

// MajorityVote builds a leaf over subset labelled with its more frequent
// label; ties go to 1.
func MajorityVote(subset data.Dataset) *Node {
	n0, n1 := subset.Labels()
	label := 1
	if n0 > n1 {
		label = 0
	}
	return NewLeaf(label, subset)
}
