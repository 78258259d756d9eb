package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/explain"
	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/router"
	"github.com/abhisek/geomotion/internal/screen"
	"github.com/abhisek/geomotion/internal/screens/explorer"
	"github.com/abhisek/geomotion/internal/screens/history"
	"github.com/abhisek/geomotion/internal/screens/home"
	"github.com/abhisek/geomotion/internal/screens/stats"
	"github.com/abhisek/geomotion/internal/screens/welcome"
	"github.com/abhisek/geomotion/internal/session"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/layout"
)

// Mode is the explorer panel mode chosen at startup.
type Mode = explorer.Mode

// Options holds the dependencies and startup settings for the TUI.
type Options struct {
	Mode     Mode
	Function trig.Function
	Speed    float64
	// Seed fixes the question sequence; 0 draws a random seed.
	Seed uint64

	Explainer *explain.Service
	// Provider is the configured LLM provider name, "" when none.
	Provider string

	Events    store.EventRepo
	Stats     store.StatsRepo
	SessionID string

	// Quiz is shared with the caller so the score survives the program.
	Quiz    *quiz.State
	Started time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	quiz   *quiz.State
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome splash.
func newAppModel(opts Options) AppModel {
	if opts.Quiz == nil {
		opts.Quiz = &quiz.State{}
	}
	if opts.Mode == "" {
		opts.Mode = explorer.ModeQuiz
	}
	if opts.Started.IsZero() {
		opts.Started = time.Now()
	}

	generator := quiz.NewSeededGenerator(opts.Seed)

	deps := home.Deps{
		Mode:     string(opts.Mode),
		Provider: opts.Provider,
		Quiz:     opts.Quiz,
		NewExplorer: func() screen.Screen {
			return explorer.New(explorer.Deps{
				Mode:      opts.Mode,
				Function:  opts.Function,
				Speed:     opts.Speed,
				Quiz:      opts.Quiz,
				Generator: generator,
				Explainer: opts.Explainer,
				Events:    opts.Events,
				SessionID: opts.SessionID,
			})
		},
	}
	if opts.Stats != nil {
		deps.NewHistory = func() screen.Screen {
			return history.New(opts.Stats, opts.SessionID)
		}
		deps.NewStats = func() screen.Screen {
			sum, err := session.BuildSummary(context.Background(), opts.Stats, opts.SessionID, time.Since(opts.Started))
			if err != nil {
				return stats.New(nil)
			}
			return stats.New(sum)
		}
	}

	return AppModel{
		router: router.New(welcome.New(func() screen.Screen { return home.New(deps) })),
		quiz:   opts.Quiz,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.quiz.Score(), m.quiz.Total(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(0, m.height-headerHeight-footerHeight)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if m.router.Depth() > 1 {
		if len(hints) == 0 {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if len(hints) == 0 {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
