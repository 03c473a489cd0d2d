package report

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jbeshir/internship-recommender/internal/domain"
)

const (
	ruleWidth             = 80
	maxPrintedSuggestions = 10
)

// ConsoleWriter prints a fixed-width comparison table per metric followed by
// the first few summary recommendations.
type ConsoleWriter struct {
	Out io.Writer
}

func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{Out: out}
}

func (w *ConsoleWriter) WriteReport(_ context.Context, report domain.EvaluationReport) error {
	var b strings.Builder
	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)

	fmt.Fprintf(&b, "\n%s\nCOMPREHENSIVE EVALUATION REPORT\n%s\n", heavy, heavy)
	fmt.Fprintf(&b, "Generated at: %s\n\n", report.Timestamp)

	for _, metric := range domain.ReportMetrics {
		rows := slices.Clone(report.Comparison.Get(metric))
		slices.SortStableFunc(rows, func(a, b domain.KValue[domain.ComparisonEntry]) int {
			return a.K - b.K
		})

		fmt.Fprintf(&b, "\n%s:\n%s\n", strings.ToUpper(string(metric)), light)
		fmt.Fprintf(&b, "%-10s %-20s %-20s %-20s %-15s\n", "K", "Content-Based", "Collaborative", "Hybrid", "Best")
		fmt.Fprintf(&b, "%s\n", light)
		for _, kv := range rows {
			fmt.Fprintf(&b, "%-10d %-20.4f %-20.4f %-20.4f %-15s\n",
				kv.K, kv.Value.ContentBased, kv.Value.CollaborativeFiltering, kv.Value.Hybrid, kv.Value.BestAlgorithm)
		}
	}

	fmt.Fprintf(&b, "\n%s\nSUMMARY & RECOMMENDATIONS\n%s\n", heavy, heavy)
	suggestions := report.Summary.Recommendations
	if len(suggestions) > maxPrintedSuggestions {
		suggestions = suggestions[:maxPrintedSuggestions]
	}
	for _, s := range suggestions {
		fmt.Fprintf(&b, "  • %s\n", s)
	}

	if report.ABTest != nil {
		fmt.Fprintf(&b, "\n%s\nA/B TESTING\n%s\n", heavy, heavy)
		for _, g := range []struct {
			name  string
			group domain.ABTestGroup
		}{{"A", report.ABTest.GroupA}, {"B", report.ABTest.GroupB}} {
			fmt.Fprintf(&b, "Group %s (%s): %d users\n", g.name, g.group.Algorithm, g.group.Users)
			for _, kv := range g.group.Results.Precision {
				fmt.Fprintf(&b, "  precision@%-4d %.4f\n", kv.K, kv.Value)
			}
		}
	}

	if _, err := io.WriteString(w.Out, b.String()); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}
	return nil
}
