package models

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"creditid3/internal/data"
)

var (
	ErrEmptyDataset = data.ErrEmptyDataset
	// ErrNoCandidate means every feature is constant over the dataset, so no
	// threshold separates it.
	ErrNoCandidate     = errors.New("no candidate threshold")
	ErrDegenerateSplit = errors.New("degenerate split")
)

// TieBreak picks among candidates with equal conditional entropy.
type TieBreak int

const (
	// FirstMinimal keeps the earliest candidate in (feature, threshold) order.
	FirstMinimal TieBreak = iota
	// LastMinimal keeps the latest one.
	LastMinimal
)

func (t TieBreak) String() string {
	if t == LastMinimal {
		return "last"
	}
	return "first"
}

func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "first":
		return FirstMinimal, nil
	case "last":
		return LastMinimal, nil
	}
	return FirstMinimal, fmt.Errorf("%w: tie break %q (want first|last)", data.ErrInvalidInput, s)
}

func (t TieBreak) better(h, best float64) bool {
	if t == LastMinimal {
		return h <= best
	}
	return h < best
}

// Entropy of a two-state population given its counts, in nats. An empty
// population has entropy 0.
func Entropy(c0, c1 int) float64 {
	total := c0 + c1
	if total == 0 {
		return 0
	}
	p0 := float64(c0) / float64(total)
	p1 := float64(c1) / float64(total)
	return stat.Entropy([]float64{p0, p1})
}

// conditionalEntropy weights each branch's entropy by its share of the
// vectors; an empty branch contributes nothing.
func conditionalEntropy(y0, y1, n0, n1 int) float64 {
	total := float64(y0 + y1 + n0 + n1)
	if total == 0 {
		return 0
	}
	h := 0.0
	if y := y0 + y1; y > 0 {
		h += float64(y) / total * Entropy(y0, y1)
	}
	if n := n0 + n1; n > 0 {
		h += float64(n) / total * Entropy(n0, n1)
	}
	return h
}

// ConditionalEntropy is H(Y | x[i] <= t) for the split of ds under rule.
func ConditionalEntropy(ds data.Dataset, rule DecisionRule) float64 {
	var y0, y1, n0, n1 int
	for _, v := range ds {
		switch {
		case rule.Passes(v) && v.Label() == 0:
			y0++
		case rule.Passes(v):
			y1++
		case v.Label() == 0:
			n0++
		default:
			n1++
		}
	}
	return conditionalEntropy(y0, y1, n0, n1)
}

type labeledValue struct {
	x     float64
	label int
}

// midpoint of a < b, clamped into [a, b) so "<= t" never captures b.
func midpoint(a, b float64) float64 {
	t := (a + b) / 2
	if math.IsInf(t, 0) || t < a || t >= b {
		return a
	}
	return t
}

// FindBestRule returns the (feature, threshold) pair whose split of ds has the
// lowest conditional entropy, i.e. the highest information gain. Each feature
// is scanned on a private sorted copy; ds itself is not reordered.
func FindBestRule(ds data.Dataset, tie TieBreak) (DecisionRule, error) {
	if len(ds) == 0 {
		return DecisionRule{}, fmt.Errorf("find best rule: %w", ErrEmptyDataset)
	}
	tot0, tot1 := ds.Labels()

	best := DecisionRule{Feature: -1}
	bestH := math.Inf(1)
	pts := make([]labeledValue, len(ds))
	for i := 0; i < ds.Dim(); i++ {
		for j, v := range ds {
			pts[j] = labeledValue{x: v.Feature(i), label: v.Label()}
		}
		sort.Slice(pts, func(a, b int) bool { return pts[a].x < pts[b].x })

		var y0, y1 int
		for j := 1; j < len(pts); j++ {
			if pts[j-1].label == 0 {
				y0++
			} else {
				y1++
			}
			if pts[j].x == pts[j-1].x {
				continue
			}
			h := conditionalEntropy(y0, y1, tot0-y0, tot1-y1)
			if tie.better(h, bestH) {
				bestH = h
				best = DecisionRule{Feature: i, Threshold: midpoint(pts[j-1].x, pts[j].x)}
			}
		}
	}
	if best.Feature < 0 {
		return DecisionRule{}, ErrNoCandidate
	}
	return best, nil
}
