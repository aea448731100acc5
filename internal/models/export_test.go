package models

import (
	"sort"

	"creditid3/internal/data"
)

func v1(x float64, label int) data.FeatureVector {
	return data.MustFeatureVector([]float64{x}, label)
}

func ds1(pairs ...float64) data.Dataset {
	out := make(data.Dataset, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, v1(pairs[i], int(pairs[i+1])))
	}
	return out
}

func stump(threshold float64, yesLabel, noLabel int, subset data.Dataset) *Node {
	rule := DecisionRule{Feature: 0, Threshold: threshold}
	yes, no := subset.Split(rule.Passes)
	return NewBranch(rule, NewLeaf(yesLabel, yes), NewLeaf(noLabel, no), subset)
}

// BudgetFixture is a one-feature tree with three improving collapses
// (x<=5, x<=15, x<=25) and one worsening one (x<=20). Its validation set
// starts at 0.75 error.
func BudgetFixture() (*Node, data.Dataset) {
	a := stump(5, 0, 1, ds1(1, 0, 1, 0, 7, 1))
	e := stump(15, 1, 0, ds1(12, 1, 12, 1, 17, 0))
	f := stump(25, 0, 1, ds1(22, 0, 22, 0, 27, 1))
	bSubset := append(append(data.Dataset{}, e.Subset...), f.Subset...)
	bSubset = append(bSubset, v1(13, 1))
	b := NewBranch(DecisionRule{Feature: 0, Threshold: 20}, e, f, bSubset)

	rootSubset := append(append(data.Dataset{}, a.Subset...), b.Subset...)
	root := NewBranch(DecisionRule{Feature: 0, Threshold: 10}, a, b, rootSubset)
	return root, ds1(7, 0, 17, 1, 27, 0, 22, 0)
}

// thresholds lists the midpoints between adjacent distinct values of feature
// i, ascending, computed independently of the FindBestRule sweep.
func thresholds(ds data.Dataset, i int) []float64 {
	vals := make([]float64, len(ds))
	for j, v := range ds {
		vals[j] = v.Feature(i)
	}
	sort.Float64s(vals)
	out := make([]float64, 0, len(vals))
	for j := 1; j < len(vals); j++ {
		if vals[j] == vals[j-1] {
			continue
		}
		out = append(out, midpoint(vals[j-1], vals[j]))
	}
	return out
}
