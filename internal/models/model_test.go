package models

import (
	"errors"
	"testing"
)

func TestTestError(t *testing.T) {
	root := stump(1.5, 0, 1, ds1(0, 0, 1, 0, 2, 1))

	got, err := TestError(root, ds1(0, 0, 1, 0, 2, 1, 3, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.25 {
		t.Errorf("TestError = %v, want 0.25", got)
	}

	if _, err := TestError(root, nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty dataset: err = %v", err)
	}
}

func TestPredictFollowsRules(t *testing.T) {
	// x<=1.5 ? (x<=0.5 ? 1 : 0) : 1
	inner := stump(0.5, 1, 0, ds1(0, 1, 1, 0))
	root := NewBranch(DecisionRule{Feature: 0, Threshold: 1.5}, inner, NewLeaf(1, ds1(2, 1)), ds1(0, 1, 1, 0, 2, 1))

	tests := []struct {
		x    float64
		want int
	}{
		{-1, 1}, {0.5, 1}, {0.7, 0}, {1.5, 0}, {1.51, 1},
	}
	for _, tt := range tests {
		if got := Predict(root, v1(tt.x, 0)); got != tt.want {
			t.Errorf("Predict(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
	if got := Predict(nil, v1(0, 1)); got != 0 {
		t.Errorf("Predict(nil) = %d", got)
	}
	if root.Depth() != 2 || root.CountLeaves() != 3 {
		t.Errorf("depth %d, leaves %d", root.Depth(), root.CountLeaves())
	}
}
