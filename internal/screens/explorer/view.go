package explorer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/explain"
	"github.com/abhisek/geomotion/internal/quiz"
	"github.com/abhisek/geomotion/internal/render"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/components"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

const (
	minCanvasRows = 6
	maxCanvasRows = 18

	// lines used by the status bar, readout, identity and bottom panel
	chromeLines = 14
)

const identityNote = "The highlighted triangle shows the Pythagorean identity. " +
	"However far the angle turns, cos θ (x) squared plus sin θ (y) squared " +
	"always equals the radius squared, 1."


func (s *ExplorerScreen) View(width, height int) string {
	rows := max(minCanvasRows, min(maxCanvasRows, height-chromeLines))
	circleCols := rows * 2
	waveCols := max(20, width-circleCols-8)

	var b strings.Builder
	b.WriteString(s.renderStatusBar(width))
	b.WriteString("\n")

	views := lipgloss.JoinHorizontal(lipgloss.Top,
		render.Circle(s.fn, s.clock.Angle(), circleCols, rows),
		"   ",
		render.Wave(s.fn, s.clock.Angle(), waveCols, rows),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, views))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderReadout()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderIdentity()))
	b.WriteString("\n\n")

	switch {
	case s.entering:
		b.WriteString(s.renderAngleEntry(width))
	case s.quiz.Active():
		b.WriteString(s.renderQuiz(width))
	case s.mode == ModeTutor:
		b.WriteString(s.renderTutor(width))
	default:
		b.WriteString(s.renderIdle(width))
	}
	return b.String()
}

func (s *ExplorerScreen) renderStatusBar(width int) string {
	state := lipgloss.NewStyle().Foreground(theme.TextDim).Render("❚❚ PAUSED")
	if s.clock.Playing() {
		state = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("▶ PLAYING")
	}
	if s.quiz.Active() {
		state = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("◆ CHALLENGE")
	}

	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(string(s.mode)))

	gauge := components.NewGauge("Speed", s.clock.Speed(), trig.MinSpeed, trig.MaxSpeed, "%.1fx", 28).View()

	right := lipgloss.JoinVertical(lipgloss.Right, badge+"  "+state, gauge)
	tabs := components.FunctionTabs(s.fn, false)

	gap := width - lipgloss.Width(tabs) - lipgloss.Width(right) - 4
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, "  ", tabs, strings.Repeat(" ", gap), right)
}

// renderReadout shows the angle and, unless a question is waiting for an
// answer, the function value.
func (s *ExplorerScreen) renderReadout() string {
	angle := s.clock.Angle()
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	fnStyle := lipgloss.NewStyle().Foreground(theme.FunctionColor(s.fn)).Bold(true)

	theta := label.Render("θ = ") +
		value.Render(fmt.Sprintf("%.0f°", trig.DisplayDegrees(angle))) +
		label.Render(fmt.Sprintf(" (%.3f rad)", angle))

	reading := "?"
	if !s.quiz.Withheld() {
		reading = trig.Readout(s.fn, angle)
	}
	fnPart := label.Render(s.fn.Lower()+" θ = ") + fnStyle.Render(reading) +
		label.Render(" ("+s.fn.Symbol()+")")

	return theta + "      " + fnPart
}

// renderIdentity is the identity the triangle illustrates. It carries no
// live values so it never gives away a withheld answer.
func renderIdentity() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	cos := lipgloss.NewStyle().Foreground(theme.FunctionColor(trig.Cosine)).Bold(true)
	sin := lipgloss.NewStyle().Foreground(theme.FunctionColor(trig.Sine)).Bold(true)
	one := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	return dim.Render("Σ  ") + cos.Render("cos²θ") + dim.Render(" + ") +
		sin.Render("sin²θ") + dim.Render(" = ") + one.Render("1")
}

func (s *ExplorerScreen) renderIdle(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("The beauty of math")
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(identityNote)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(min(width-8, 90)).
		Padding(0, 2).
		Render(title + "\n" + body)
	hint := theme.Hint.Render("Press g to start a challenge")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, card, hint))
}

func (s *ExplorerScreen) renderQuiz(width int) string {
	q := s.quiz.Question()
	mc := components.NewMultiChoice(quiz.Prompt(q), q.Options[:], q.CorrectIndex)
	if i, ok := s.quiz.Selected(); ok {
		mc.Chosen = i
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View())
}

func (s *ExplorerScreen) renderTutor(width int) string {
	var text string
	switch {
	case s.explanation.Pending:
		text = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Thinking...")
	case s.explanation.Text != "":
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if isFixedMessage(s.explanation.Text) {
			style = style.Foreground(theme.Accent)
		}
		text = style.Render(s.explanation.Text)
	default:
		text = theme.Hint.Render("Press x to ask the tutor about this angle")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(min(width-8, 90)).
		Padding(0, 2).
		Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func isFixedMessage(text string) bool {
	return text == explain.MsgCredentialMissing || text == explain.MsgUnavailable || text == explain.MsgEmpty
}

func (s *ExplorerScreen) renderAngleEntry(width int) string {
	line := "Angle: " + s.angleInput.View()
	if s.inputErr != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.inputErr)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
