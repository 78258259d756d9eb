package quiz

import (
	"fmt"
	"math"

	"github.com/abhisek/geomotion/internal/trig"
)

// State holds the active question and the running score. The zero value is
// an inactive quiz with no answers.
type State struct {
	active   bool
	question Question
	selected *int
	score    int
	total    int
	history  []bool
}

// Active reports whether a question is on screen.
func (s *State) Active() bool { return s.active }

// Question returns the current question. Only meaningful while Active.
func (s *State) Question() Question { return s.question }

// Selected returns the submitted option index, if any.
func (s *State) Selected() (int, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// Score is the number of correct answers.
func (s *State) Score() int { return s.score }

// Total is the number of answered questions.
func (s *State) Total() int { return s.total }

// History returns per-answer correctness in answer order.
func (s *State) History() []bool {
	out := make([]bool, len(s.history))
	copy(out, s.history)
	return out
}

// Start shows q, replacing any current question.
func (s *State) Start(q Question) {
	s.active = true
	s.question = q
	s.selected = nil
}

// Submit records the answer at index i. Only the first in-range submission
// per question is accepted; it returns false for ignored calls.
func (s *State) Submit(i int) bool {
	if !s.active || s.selected != nil || i < 0 || i >= OptionCount {
		return false
	}
	s.selected = &i
	s.total++
	correct := i == s.question.CorrectIndex
	if correct {
		s.score++
	}
	s.history = append(s.history, correct)
	return true
}

// End clears the current question. Score and total are kept.
func (s *State) End() {
	s.active = false
	s.question = Question{}
	s.selected = nil
}

// Reset drops the question and the score.
func (s *State) Reset() {
	*s = State{}
}

// Answered reports whether the current question has been answered.
func (s *State) Answered() bool {
	return s.active && s.selected != nil
}

// Withheld reports whether the live value readout must be hidden.
func (s *State) Withheld() bool {
	return s.active && s.selected == nil
}

// IsCorrect reports whether the current question was answered correctly.
func (s *State) IsCorrect() bool {
	return s.Answered() && *s.selected == s.question.CorrectIndex
}

// Accuracy is score/total in [0, 1], or 0 before any answer.
func (s *State) Accuracy() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.score) / float64(s.total)
}

// Prompt is the question text shown above the options.
func Prompt(q Question) string {
	deg := math.Mod(math.Round(trig.DisplayDegrees(q.Angle)), 360)
	return fmt.Sprintf("Estimate %s(%.0f°) from the views above.", q.Function, deg)
}
