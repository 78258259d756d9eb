package history

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/render"
	"github.com/abhisek/geomotion/internal/router"
	"github.com/abhisek/geomotion/internal/screen"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/layout"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

type historyLoadedMsg struct {
	Answers []store.AnswerEvent
	Err     error
}

// HistoryScreen lists the answers given in this session.
type HistoryScreen struct {
	statsRepo store.StatsRepo
	sessionID string
	answers   []store.AnswerEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for sessionID.
func New(statsRepo store.StatsRepo, sessionID string) *HistoryScreen {
	return &HistoryScreen{
		statsRepo: statsRepo,
		sessionID: sessionID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		answers, err := s.statsRepo.QueryAnswerEvents(context.Background(), store.QueryOpts{SessionID: s.sessionID})
		return historyLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Answer History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Show angle"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.answers)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.answers) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Start a challenge from the explorer!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.answers {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !a.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		deg := math.Mod(math.Round(trig.DisplayDegrees(a.Angle)), 360)
		line := fmt.Sprintf("%s#%-3d %s(%3.0f°)  you %6s  answer %6s  %4.1fs ",
			prefix, i+1, a.Function, deg, a.LearnerAnswer, a.CorrectAnswer, float64(a.TimeMs)/1000)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+mark))
		b.WriteString("\n")

		if s.expanded[i] {
			fn, err := trig.ParseFunction(a.Function)
			if err != nil {
				continue
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				render.Circle(fn, a.Angle, 16, 4)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
