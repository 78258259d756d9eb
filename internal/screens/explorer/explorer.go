// Package explorer is the main screen: the unit circle and wave views
// with playback controls, plus the quiz or tutor panel.
package explorer

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geomotion/internal/explain"
	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/screen"
	"github.com/abhisek/geomotion/internal/store"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/components"
	"github.com/abhisek/geomotion/internal/ui/layout"
)

// Mode selects the panel under the views. It is fixed for the process.
type Mode string

const (
	ModeQuiz  Mode = "quiz"
	ModeTutor Mode = "tutor"
)

// ParseMode parses "quiz" or "tutor".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeQuiz, ModeTutor:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want quiz or tutor)", s)
}

const (
	frameRate = time.Second / 30

	// scrubStep is the angle change per arrow key press, in radians.
	scrubStep = 0.05
)

// Deps are the collaborators of the explorer screen. Events and
// Explainer may be nil.
type Deps struct {
	Mode      Mode
	Function  trig.Function
	Speed     float64
	Quiz      *quiz.State
	Generator *quiz.Generator
	Explainer *explain.Service
	Events    store.EventRepo
	SessionID string
}

// ExplorerScreen implements screen.Screen for the visualization.
type ExplorerScreen struct {
	mode      Mode
	fn        trig.Function
	clock     *trig.Clock
	quiz      *quiz.State
	generator *quiz.Generator
	explainer *explain.Service
	events    store.EventRepo
	sessionID string

	askedAt     time.Time
	explanation explain.State
	gen         int

	entering   bool
	angleInput components.TextInput
	inputErr   string
}

var _ screen.Screen = (*ExplorerScreen)(nil)
var _ screen.KeyHintProvider = (*ExplorerScreen)(nil)
var _ screen.InputCapturer = (*ExplorerScreen)(nil)

// New creates an explorer at the initial angle, paused.
func New(d Deps) *ExplorerScreen {
	if d.Quiz == nil {
		d.Quiz = &quiz.State{}
	}
	if d.Generator == nil {
		d.Generator = quiz.NewGenerator(nil)
	}
	if d.Mode == "" {
		d.Mode = ModeQuiz
	}
	if d.Function == "" {
		d.Function = trig.Sine
	}
	if d.Speed == 0 {
		d.Speed = trig.DefaultSpeed
	}
	s := &ExplorerScreen{
		mode:      d.Mode,
		fn:        d.Function,
		clock:     trig.NewClock(trig.InitialAngle, d.Speed),
		quiz:      d.Quiz,
		generator: d.Generator,
		explainer: d.Explainer,
		events:    d.Events,
		sessionID: d.SessionID,
	}
	// A question left open on an earlier visit is shown again at its own
	// function and angle.
	if s.quiz.Active() {
		q := s.quiz.Question()
		s.fn = q.Function
		s.clock.SetAngle(q.Angle)
		s.askedAt = time.Now()
	}
	return s
}

func (s *ExplorerScreen) Init() tea.Cmd {
	return frameCmd()
}

func (s *ExplorerScreen) Title() string {
	return "Explorer"
}

// CapturingInput is true while the angle entry field has focus.
func (s *ExplorerScreen) CapturingInput() bool {
	return s.entering
}

// Function is the selected function.
func (s *ExplorerScreen) Function() trig.Function { return s.fn }

// Clock exposes the playback state.
func (s *ExplorerScreen) Clock() *trig.Clock { return s.clock }

// Explanation is the current explanation state.
func (s *ExplorerScreen) Explanation() explain.State { return s.explanation }

func (s *ExplorerScreen) KeyHints() []layout.KeyHint {
	if s.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set angle"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.quiz.Active() {
		if s.quiz.Answered() {
			return []layout.KeyHint{
				{Key: "n", Description: "Next"},
				{Key: "e", Description: "End"},
				{Key: "s/c/t", Description: "Function"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "e", Description: "End"},
			{Key: "s/c/t", Description: "Function"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "←→", Description: "Scrub"},
		{Key: "+/-", Description: "Speed"},
		{Key: "s/c/t", Description: "Function"},
		{Key: "a", Description: "Angle"},
		{Key: "r", Description: "Reset"},
	}
	if s.mode == ModeTutor {
		return append(hints, layout.KeyHint{Key: "x", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "g", Description: "Challenge"})
}

func (s *ExplorerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if s.clock.Tick(time.Time(msg)) && s.explanation.Visible() {
			s.invalidate()
		}
		return s, frameCmd()

	case explanationMsg:
		if msg.gen == s.gen && s.explanation.Pending {
			s.explanation.Complete(msg.text)
		}
		return s, nil

	case tea.KeyMsg:
		if s.entering {
			return s.handleEntryKey(msg)
		}
		return s, s.handleKey(msg.String())
	}

	if s.entering {
		var cmd tea.Cmd
		s.angleInput, cmd = s.angleInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExplorerScreen) handleKey(key string) tea.Cmd {
	switch key {
	case "s":
		s.setFunction(trig.Sine)
		return nil
	case "c":
		s.setFunction(trig.Cosine)
		return nil
	case "t":
		s.setFunction(trig.Tangent)
		return nil
	case "+", "=":
		s.clock.AdjustSpeed(trig.SpeedStep)
		return nil
	case "-", "_":
		s.clock.AdjustSpeed(-trig.SpeedStep)
		return nil
	}

	if s.quiz.Active() {
		return s.handleQuizKey(key)
	}

	switch key {
	case "space", " ":
		s.clock.Toggle()
		if s.clock.Playing() {
			s.invalidate()
		}
	case "left", "h":
		s.clock.Nudge(-scrubStep)
		s.invalidate()
	case "right", "l":
		s.clock.Nudge(scrubStep)
		s.invalidate()
	case "r":
		s.clock.Reset()
		s.invalidate()
	case "a":
		s.entering = true
		s.inputErr = ""
		s.angleInput = components.NewTextInput("degrees", true, 10)
		return s.angleInput.Init()
	case "g":
		if s.mode == ModeQuiz {
			s.startQuestion()
		}
	case "x":
		if s.mode == ModeTutor {
			s.clock.Pause()
			return s.requestExplanation()
		}
	}
	return nil
}

func (s *ExplorerScreen) handleQuizKey(key string) tea.Cmd {
	switch key {
	case "1", "2", "3", "4":
		s.submit(int(key[0] - '1'))
	case "n":
		if s.quiz.Answered() {
			s.startQuestion()
		}
	case "e":
		s.quiz.End()
	}
	return nil
}

func (s *ExplorerScreen) handleEntryKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.entering = false
		s.inputErr = ""
		return s, nil
	case "enter":
		deg, err := s.angleInput.FloatValue()
		if err != nil {
			s.angleInput.Submit(false)
			s.inputErr = "Enter an angle in degrees, e.g. 135"
			return s, nil
		}
		s.entering = false
		s.inputErr = ""
		s.clock.SetAngle(trig.Radians(deg))
		s.invalidate()
		return s, nil
	}

	var cmd tea.Cmd
	s.angleInput, cmd = s.angleInput.Update(msg)
	return s, cmd
}

// setFunction switches the plotted function. Anything tied to the old
// function (question, explanation) is discarded.
func (s *ExplorerScreen) setFunction(fn trig.Function) {
	if fn == s.fn {
		return
	}
	s.fn = fn
	s.quiz.End()
	s.invalidate()
}

// invalidate drops the explanation and any reply still in flight.
func (s *ExplorerScreen) invalidate() {
	s.gen++
	s.explanation.Clear()
}

func (s *ExplorerScreen) startQuestion() {
	q, err := s.generator.Next(s.fn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	s.quiz.Start(q)
	s.clock.SetAngle(q.Angle)
	s.askedAt = time.Now()
}

func (s *ExplorerScreen) submit(i int) {
	if !s.quiz.Submit(i) {
		return
	}
	if s.events == nil {
		return
	}
	q := s.quiz.Question()
	if err := s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:     s.sessionID,
		Function:      q.Function.String(),
		Angle:         q.Angle,
		CorrectAnswer: q.Answer,
		LearnerAnswer: q.Options[i],
		Correct:       s.quiz.IsCorrect(),
		TimeMs:        time.Since(s.askedAt).Milliseconds(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log answer: %v\n", err)
	}
}

// requestExplanation starts one explanation request. Without a provider
// the fixed message is shown at once.
func (s *ExplorerScreen) requestExplanation() tea.Cmd {
	if !s.explanation.Begin() {
		return nil
	}
	if !s.explainer.Configured() {
		s.explanation.Complete(explain.MsgCredentialMissing)
		return nil
	}

	gen := s.gen
	svc := s.explainer
	in := explain.Input{Function: s.fn, Angle: s.clock.Angle()}
	return func() tea.Msg {
		return explanationMsg{gen: gen, text: svc.Explain(context.Background(), in)}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
