package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/ui/theme"
)

// MultiChoice renders the four quiz options with their number keys. Once
// an option is chosen the correct one turns green and a wrong choice red.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	// Chosen is -1 until the learner answers.
	Chosen int
}

// NewMultiChoice creates an unanswered multiple-choice view.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Answered reports whether an option has been chosen.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0
}

// IsCorrect returns true if the learner chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Answered() && m.Chosen == m.CorrectIndex
}

// View renders the question above a row of option chips.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	chip := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	chips := make([]string, len(m.Options))
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d  %s", i+1, opt)
		style := chip.BorderForeground(theme.Border).Foreground(theme.Text)
		if m.Answered() {
			switch i {
			case m.CorrectIndex:
				style = chip.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
			case m.Chosen:
				style = chip.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
			default:
				style = chip.BorderForeground(theme.Border).Foreground(theme.TextDim)
			}
		}
		chips[i] = style.Render(label)
	}
	s += lipgloss.JoinHorizontal(lipgloss.Top, chips...)

	if m.Answered() {
		s += "\n"
		if m.IsCorrect() {
			s += theme.Correct.Render("Correct!")
		} else {
			s += theme.Incorrect.Render("Not quite. The answer is " + m.Options[m.CorrectIndex] + ".")
		}
	}
	return strings.TrimRight(s, "\n")
}
