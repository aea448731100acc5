package report

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"creditid3/internal/models"
)

// Metrics summarizes a tree against the three datasets.
type Metrics struct {
	TrainError      float64 `json:"train_error"`
	ValidationError float64 `json:"validation_error"`
	TestError       float64 `json:"test_error"`
	Nodes           int     `json:"nodes"`
	Leaves          int     `json:"leaves"`
	Depth           int     `json:"depth"`
}

var printer = message.NewPrinter(language.English)

// RuleText renders a branch test with the column name when one is known.
func RuleText(r models.DecisionRule, name func(int) string) string {
	col := "x_" + strconv.Itoa(r.Feature)
	if name != nil {
		if n := name(r.Feature); n != col {
			col = n + " (" + col + ")"
		}
	}
	return "Is " + col + " <= " + strconv.FormatFloat(r.Threshold, 'g', -1, 64) + "?"
}

// WriteTree prints root in pre-order, two spaces per level, yes branch first.
func WriteTree(w io.Writer, root *models.Node, name func(int) string) error {
	var err error
	root.Walk(func(n *models.Node, depth int) {
		if err != nil {
			return
		}
		line := n.String()
		if !n.IsLeaf {
			line = RuleText(n.Rule, name)
		}
		_, err = printer.Fprintf(w, "%s%s [%d]\n", strings.Repeat("  ", depth), line, len(n.Subset))
	})
	return err
}

func WriteMetrics(w io.Writer, title string, m Metrics) error {
	_, err := printer.Fprintf(w,
		"%s: %d nodes, %d leaves, depth %d\n  training error   = %.4f\n  validation error = %.4f\n  test error       = %.4f\n",
		title, m.Nodes, m.Leaves, m.Depth, m.TrainError, m.ValidationError, m.TestError)
	return err
}

func WritePrunes(w io.Writer, prunes []models.PruneReport, name func(int) string) error {
	if len(prunes) == 0 {
		_, err := printer.Fprintf(w, "No subtree improved validation error.\n")
		return err
	}
	for _, p := range prunes {
		desc := p.Description
		if p.Discarded != nil && !p.Discarded.IsLeaf {
			desc = RuleText(p.Discarded.Rule, name)
		}
		if _, err := printer.Fprintf(w, "Pruning #%d %q: validation error = %.4f, test error = %.4f\n",
			p.Step, desc, p.ValidationError, p.TestError); err != nil {
			return err
		}
	}
	return nil
}
