package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/geomotion/internal/session"
)

// printSummary writes the end-of-session report.
func printSummary(w io.Writer, sum *session.Summary) {
	rule := strings.Repeat("─", 64)

	fmt.Fprintln(w, "Session Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Time:      %s\n", sum.DurationString())
	fmt.Fprintf(w, "Questions: %d   Correct: %d   Accuracy: %.0f%%\n",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	for _, fr := range sum.Functions {
		fmt.Fprintf(w, "  %-4s %d/%d\n", fr.Function, fr.Correct, fr.Attempted)
	}

	if chart := session.TrendChart(sum.Trend, 40, 6); chart != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, chart)
	}

	if len(sum.Usage) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tutor Usage")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-16s  %6s  %6s  %10s  %10s\n", "Purpose", "Calls", "Failed", "Input", "Output")
	fmt.Fprintln(w, rule)
	for _, u := range sum.Usage {
		fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d\n",
			truncate(u.Key, 16), u.Calls, u.Failures, u.InputTokens, u.OutputTokens)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Estimated cost: %s\n", sum.CostString())
	if len(sum.Unpriced) > 0 {
		fmt.Fprintf(w, "Pricing unavailable for: %s\n", strings.Join(sum.Unpriced, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
