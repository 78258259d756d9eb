package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/router"
	"github.com/abhisek/geomotion/internal/screen"
	"github.com/abhisek/geomotion/internal/screens/placeholder"
	"github.com/abhisek/geomotion/internal/ui/components"
)

// Deps are what the home screen needs to build the screens it opens.
type Deps struct {
	// Mode is shown in the status bar.
	Mode string
	// Provider is the configured LLM provider name, "" when none.
	Provider string
	// Quiz supplies the score for the status bar. May be nil.
	Quiz *quiz.State

	NewExplorer func() screen.Screen
	NewHistory  func() screen.Screen
	NewStats    func() screen.Screen
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(d Deps) *HomeScreen {
	menuLabels := []string{"EXPLORE", "ANSWER HISTORY", "SESSION STATS", "EXIT"}

	push := func(build func() screen.Screen, title, missing string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				if build == nil {
					return router.PushScreenMsg{Screen: placeholder.New(title, missing)}
				}
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Hotkey: "e", Action: push(d.NewExplorer, "Explorer", "The explorer could not be started.")},
		{Label: menuLabels[1], Hotkey: "h", Action: push(d.NewHistory, "Answer History", "The session log is not available.")},
		{Label: menuLabels[2], Hotkey: "s", Action: push(d.NewStats, "Session Stats", "The session log is not available.")},
		{Label: menuLabels[3], Hotkey: "q", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		deps:       d,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 80

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderPreview(cw))
	}

	var score, total int
	if h.deps.Quiz != nil {
		score, total = h.deps.Quiz.Score(), h.deps.Quiz.Total()
	}
	sections = append(sections, renderStatusBar(h.deps.Mode, h.deps.Provider, score, total, cw, compact))
	if h.deps.Mode == "tutor" && h.deps.Provider == "" {
		sections = append(sections, renderLLMBanner(cw))
	}
	sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
