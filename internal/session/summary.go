// Package session summarizes one explorer session from the event log:
// quiz results, the running accuracy trend and LLM usage.
package session

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/abhisek/geomotion/internal/llm"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
)

// FunctionResult is the quiz tally for one function.
type FunctionResult struct {
	Function  trig.Function
	Attempted int
	Correct   int
}

// Summary holds the data displayed on the stats screen and printed at exit.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Functions      []FunctionResult

	// Trend is the running accuracy after each answer, in percent.
	Trend []float64

	Usage []store.UsageRow

	// Cost is the estimated spend over all priced models. Unpriced lists
	// the models that had calls but no price entry.
	Cost     float64
	Unpriced []string
}

// BuildSummary reads the session's answers and the LLM usage from repo.
func BuildSummary(ctx context.Context, repo store.StatsRepo, sessionID string, elapsed time.Duration) (*Summary, error) {
	answers, err := repo.QueryAnswerEvents(ctx, store.QueryOpts{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage by model: %w", err)
	}

	s := &Summary{Duration: elapsed, Usage: usage}

	tally := make(map[trig.Function]*FunctionResult)
	history := make([]bool, 0, len(answers))
	for _, a := range answers {
		s.TotalQuestions++
		if a.Correct {
			s.TotalCorrect++
		}
		history = append(history, a.Correct)

		fn, err := trig.ParseFunction(a.Function)
		if err != nil {
			continue
		}
		fr, ok := tally[fn]
		if !ok {
			fr = &FunctionResult{Function: fn}
			tally[fn] = fr
		}
		fr.Attempted++
		if a.Correct {
			fr.Correct++
		}
	}
	for _, fn := range trig.AllFunctions() {
		if fr, ok := tally[fn]; ok {
			s.Functions = append(s.Functions, *fr)
		}
	}

	if s.TotalQuestions > 0 {
		s.Accuracy = float64(s.TotalCorrect) / float64(s.TotalQuestions)
	}
	s.Trend = RunningAccuracy(history)

	for _, row := range byModel {
		usd, ok := llm.EstimateCost(row.Key, row.InputTokens, row.OutputTokens)
		if !ok {
			if row.Calls > 0 {
				s.Unpriced = append(s.Unpriced, row.Key)
			}
			continue
		}
		s.Cost += usd
	}
	slices.Sort(s.Unpriced)

	return s, nil
}

// RunningAccuracy returns the cumulative percentage of correct answers
// after each entry of history.
func RunningAccuracy(history []bool) []float64 {
	out := make([]float64, len(history))
	correct := 0
	for i, ok := range history {
		if ok {
			correct++
		}
		out[i] = 100 * float64(correct) / float64(i+1)
	}
	return out
}

// TrendChart plots the running accuracy. It returns "" with fewer than
// two points since a single value has no trend.
func TrendChart(trend []float64, width, height int) string {
	if len(trend) < 2 {
		return ""
	}
	return asciigraph.Plot(trend,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Precision(0),
		asciigraph.Caption("Accuracy %"),
	)
}

// CostString formats the estimated spend, or "n/a" when nothing was priced.
func (s *Summary) CostString() string {
	if s.Cost == 0 && len(s.Unpriced) > 0 {
		return "n/a"
	}
	return fmt.Sprintf("$%.4f", s.Cost)
}

// DurationString formats the duration as m:ss.
func (s *Summary) DurationString() string {
	mins := int(s.Duration.Minutes())
	secs := int(s.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
