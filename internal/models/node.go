package models

import (
	"fmt"
	"strconv"

	"creditid3/internal/data"
)

// DecisionRule is the binary test "x[Feature] <= Threshold".
type DecisionRule struct {
	Feature   int
	Threshold float64
}

func (r DecisionRule) Passes(v data.FeatureVector) bool {
	return v.Feature(r.Feature) <= r.Threshold
}

func (r DecisionRule) String() string {
	return "Is x_" + strconv.Itoa(r.Feature) + " <= " + strconv.FormatFloat(r.Threshold, 'g', -1, 64) + "?"
}

// Node is either a branch (Rule, Yes, No) or a leaf (Label). Both kinds keep
// the training vectors that reached them so a branch can later be collapsed
// into a majority-vote leaf. Children are owned by exactly one parent.
type Node struct {
	Rule   DecisionRule
	Yes    *Node
	No     *Node
	IsLeaf bool
	Label  int
	Subset data.Dataset
}

func NewLeaf(label int, subset data.Dataset) *Node {
	return &Node{IsLeaf: true, Label: label, Subset: subset}
}

func NewBranch(rule DecisionRule, yes, no *Node, subset data.Dataset) *Node {
	return &Node{Rule: rule, Yes: yes, No: no, Subset: subset}
}

func (n *Node) String() string {
	if n.IsLeaf {
		return fmt.Sprintf("predict = %d", n.Label)
	}
	return n.Rule.String()
}

func (n *Node) CountNodes() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf {
		return 1
	}
	return 1 + n.Yes.CountNodes() + n.No.CountNodes()
}

func (n *Node) CountLeaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf {
		return 1
	}
	return n.Yes.CountLeaves() + n.No.CountLeaves()
}

// Depth is the number of edges on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf {
		return 0
	}
	return 1 + max(n.Yes.Depth(), n.No.Depth())
}

// Walk visits the tree in pre-order, yes subtree first.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	var walk func(*Node, int)
	walk = func(node *Node, depth int) {
		if node == nil {
			return
		}
		fn(node, depth)
		if !node.IsLeaf {
			walk(node.Yes, depth+1)
			walk(node.No, depth+1)
		}
	}
	walk(n, 0)
}
