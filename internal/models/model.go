package models

import "creditid3/internal/data"

type Model interface {
	Fit(train data.Dataset) error
	Predict(ds data.Dataset) []int
	Name() string
}

// Predict walks root down to a leaf, taking Yes whenever v passes the rule.
// A nil root predicts 0.
func Predict(root *Node, v data.FeatureVector) int {
	n := root
	if n == nil {
		return 0
	}
	for !n.IsLeaf {
		if n.Rule.Passes(v) {
			n = n.Yes
		} else {
			n = n.No
		}
	}
	return n.Label
}

// TestError is the fraction of ds that root misclassifies.
func TestError(root *Node, ds data.Dataset) (float64, error) {
	if len(ds) == 0 {
		return 0, ErrEmptyDataset
	}
	return ErrorRate(ds, predictAll(root, ds))
}

// ErrorRate compares predictions with the labels of ds.
func ErrorRate(ds data.Dataset, preds []int) (float64, error) {
	if len(ds) == 0 {
		return 0, ErrEmptyDataset
	}
	wrong := 0
	for i, v := range ds {
		if preds[i] != v.Label() {
			wrong++
		}
	}
	return float64(wrong) / float64(len(ds)), nil
}

func predictAll(root *Node, ds data.Dataset) []int {
	out := make([]int, len(ds))
	for i, v := range ds {
		out[i] = Predict(root, v)
	}
	return out
}
