package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/router"
	"github.com/abhisek/geomotion/internal/screen"
	"github.com/abhisek/geomotion/internal/session"
	"github.com/abhisek/geomotion/internal/ui/components"
	"github.com/abhisek/geomotion/internal/ui/layout"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

const (
	trendHeight = 6
	trendWidth  = 40
)

// StatsScreen displays the session summary.
type StatsScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen. A nil summary renders a placeholder.
func New(summary *session.Summary) *StatsScreen {
	return &StatsScreen{summary: summary}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Session Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	sum := s.summary
	if sum == nil {
		return center(dim.Render("No session data available."))
	}

	var b strings.Builder

	b.WriteString(center(theme.Title.Render("Session stats")))
	b.WriteString("\n")
	b.WriteString(center(dim.Render("Time: " + sum.DurationString())))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d", sum.TotalQuestions, sum.TotalCorrect)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine)))
	b.WriteString("\n")
	gauge := components.NewGauge("Accuracy", sum.Accuracy*100, 0, 100, "%.0f%%", 36)
	b.WriteString(center(gauge.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(10, min(width-8, 60))))

	if len(sum.Functions) > 0 {
		b.WriteString(center(dim.Render("Functions")))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n")
		for _, fr := range sum.Functions {
			line := fmt.Sprintf("%-4s %d/%d correct", fr.Function, fr.Correct, fr.Attempted)
			style := lipgloss.NewStyle().Foreground(theme.FunctionColor(fr.Function))
			b.WriteString(center(style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(center(dim.Render("Trend")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n")
	if chart := session.TrendChart(sum.Trend, trendWidth, trendHeight); chart != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Secondary).Render(chart)))
	} else {
		b.WriteString(center(dim.Render("Answer at least two questions to see a trend.")))
	}
	b.WriteString("\n\n")

	b.WriteString(center(dim.Render("Tutor usage")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n")
	if len(sum.Usage) == 0 {
		b.WriteString(center(dim.Render("No tutor requests yet.")))
		b.WriteString("\n")
	}
	for _, u := range sum.Usage {
		line := fmt.Sprintf("%-12s %3d calls  %3d failed  %6d in  %6d out",
			u.Key, u.Calls, u.Failures, u.InputTokens, u.OutputTokens)
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString(center(dim.Render("Estimated cost: " + sum.CostString())))

	return b.String()
}
