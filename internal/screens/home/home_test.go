package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/router"
	"github.com/abhisek/geomotion/internal/screen"
	"github.com/abhisek/geomotion/internal/screens/placeholder"
)

func testDeps() Deps {
	return Deps{
		Mode:        "quiz",
		Quiz:        &quiz.State{},
		NewExplorer: func() screen.Screen { return placeholder.New("explorer", "") },
		NewHistory:  func() screen.Screen { return placeholder.New("history", "") },
		NewStats:    func() screen.Screen { return placeholder.New("stats", "") },
	}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func TestHome_Explore(t *testing.T) {
	h := New(testDeps())
	_, cmd := h.Update(enter())
	assert.Equal(t, "explorer", pushed(t, cmd).Title())
}

func TestHome_History(t *testing.T) {
	h := New(testDeps())
	h.Update(down())
	_, cmd := h.Update(enter())
	assert.Equal(t, "history", pushed(t, cmd).Title())
}

func TestHome_Stats(t *testing.T) {
	h := New(testDeps())
	h.Update(down())
	h.Update(down())
	_, cmd := h.Update(enter())
	assert.Equal(t, "stats", pushed(t, cmd).Title())
}

func TestHome_Exit(t *testing.T) {
	h := New(testDeps())
	for range 3 {
		h.Update(down())
	}
	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_Hotkeys(t *testing.T) {
	h := New(testDeps())
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	assert.Equal(t, "history", pushed(t, cmd).Title())

	_, cmd = h.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.Equal(t, "stats", pushed(t, cmd).Title())

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_MissingStats(t *testing.T) {
	d := testDeps()
	d.NewStats = nil
	h := New(d)
	h.Update(down())
	h.Update(down())
	_, cmd := h.Update(enter())
	s := pushed(t, cmd)
	assert.Equal(t, "Session Stats", s.Title())
	assert.Contains(t, s.View(80, 20), "session log is not available")
}

func TestHome_View(t *testing.T) {
	d := testDeps()
	d.Quiz.Start(quiz.NewSeededGenerator(1).Generate("SIN"))
	d.Quiz.Submit(d.Quiz.Question().CorrectIndex)

	view := New(d).View(100, 40)
	assert.Contains(t, view, "EXPLORE")
	assert.Contains(t, view, "ANSWER HISTORY")
	assert.Contains(t, view, "SESSION STATS")
	assert.Contains(t, view, "QUIZ")
	assert.Contains(t, view, "TUTOR OFFLINE")
	assert.Contains(t, view, "★ 1/1")
	assert.Contains(t, view, "|_|  |_|")
}

func TestHome_CompactView(t *testing.T) {
	view := New(testDeps()).View(60, 15)
	assert.Contains(t, view, "G · E · O")
}

func TestHome_TutorWithoutProvider(t *testing.T) {
	d := testDeps()
	d.Mode = "tutor"
	assert.Contains(t, New(d).View(100, 40), "Set an LLM API key")

	d.Provider = "gemini"
	view := New(d).View(100, 40)
	assert.NotContains(t, view, "Set an LLM API key")
	assert.Contains(t, view, "TUTOR GEMINI")
}
