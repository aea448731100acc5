package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"creditid3/internal/data"
)

func TestMajorityVote(t *testing.T) {
	tests := []struct {
		name   string
		subset data.Dataset
		want   int
	}{
		{"more zeros", ds1(1, 0, 2, 0, 3, 1), 0},
		{"more ones", ds1(1, 1, 2, 0, 3, 1), 1},
		{"tie", ds1(1, 0, 2, 1), 1},
		{"empty", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := MajorityVote(tt.subset)
			if !leaf.IsLeaf || leaf.Label != tt.want || len(leaf.Subset) != len(tt.subset) {
				t.Errorf("got %v over %d vectors, want predict = %d", leaf, len(leaf.Subset), tt.want)
			}
		})
	}
}

func TestPruneStopsBelowBudget(t *testing.T) {
	// x<=5 ? (x<=2 ? 0 : 1) : (x<=8 ? (x<=7 ? 1 : 0) : 0)
	a := stump(2, 0, 1, ds1(1, 0, 1, 0, 3, 1))
	c := stump(7, 1, 0, ds1(6, 1, 6, 1, 7.5, 0))
	b := NewBranch(DecisionRule{Feature: 0, Threshold: 8}, c, NewLeaf(0, ds1(9, 0)), ds1(6, 1, 6, 1, 7.5, 0, 9, 0))
	root := NewBranch(DecisionRule{Feature: 0, Threshold: 5}, a, b, append(append(data.Dataset{}, a.Subset...), b.Subset...))
	validation := ds1(1, 0, 3, 0, 6, 1, 9, 0)

	if e, _ := TestError(root, validation); e != 0.25 {
		t.Fatalf("baseline validation error = %v, want 0.25", e)
	}

	reports, err := NewPruner(2).Prune(root, validation, validation)
	if err != nil {
		t.Fatal(err)
	}
	want := []PruneReport{{Step: 1, Description: "Is x_0 <= 2?", ValidationError: 0, TestError: 0}}
	if diff := cmp.Diff(want, reports, cmpopts.IgnoreFields(PruneReport{}, "Discarded")); diff != "" {
		t.Errorf("reports (-want +got):\n%s", diff)
	}
	if reports[0].Discarded != a {
		t.Error("report does not carry the discarded subtree")
	}
	if !root.Yes.IsLeaf || root.Yes.Label != 0 {
		t.Errorf("root.Yes = %v, want predict = 0", root.Yes)
	}
	if root.No != b || b.Yes != c {
		t.Error("rejected collapses were not reverted")
	}
}

func TestPruneHonoursBudget(t *testing.T) {
	root, validation := BudgetFixture()
	reports, err := NewPruner(2).Prune(root, validation, validation)
	if err != nil {
		t.Fatal(err)
	}

	got := make([]string, len(reports))
	for i, r := range reports {
		got[i] = r.Description
	}
	if diff := cmp.Diff([]string{"Is x_0 <= 5?", "Is x_0 <= 15?"}, got); diff != "" {
		t.Errorf("pruned (-want +got):\n%s", diff)
	}
	if reports[0].ValidationError != 0.5 || reports[1].ValidationError != 0.25 {
		t.Errorf("validation errors %v, %v; want 0.5, 0.25", reports[0].ValidationError, reports[1].ValidationError)
	}
	if root.No.No.IsLeaf {
		t.Error("collapse beyond the budget was applied")
	}
	for i := 1; i < len(reports); i++ {
		if reports[i].ValidationError >= reports[i-1].ValidationError {
			t.Errorf("step %d did not lower validation error", reports[i].Step)
		}
	}
}

func TestPruneUnbounded(t *testing.T) {
	root, validation := BudgetFixture()
	reports, err := NewPruner(0).Prune(root, validation, validation)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d prunes, want 3", len(reports))
	}
	if e, _ := TestError(root, validation); e != 0 {
		t.Errorf("final validation error = %v, want 0", e)
	}

	again, err := NewPruner(0).Prune(root, validation, validation)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Errorf("second pass pruned %d more", len(again))
	}
}

func TestPruneLeafRoot(t *testing.T) {
	root := NewLeaf(1, ds1(1, 1))
	reports, err := NewPruner(2).Prune(root, ds1(1, 0), ds1(1, 0))
	if err != nil || len(reports) != 0 {
		t.Errorf("got %v, %v; want no prunes", reports, err)
	}
}

func TestPruneErrors(t *testing.T) {
	root := stump(1.5, 0, 1, ds1(0, 0, 2, 1))
	if _, err := NewPruner(2).Prune(nil, ds1(1, 0), ds1(1, 0)); !errors.Is(err, data.ErrInvalidInput) {
		t.Errorf("nil root: err = %v", err)
	}
	if _, err := NewPruner(2).Prune(root, nil, ds1(1, 0)); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty validation: err = %v", err)
	}
	if _, err := NewPruner(2).Prune(root, ds1(1, 0), nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty test: err = %v", err)
	}
}
