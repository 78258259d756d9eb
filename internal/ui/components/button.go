package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

var tabStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// FunctionTabs renders one button per function with the selected one
// highlighted in its plot color. The hotkey is shown in brackets.
func FunctionTabs(selected trig.Function, disabled bool) string {
	tabs := make([]string, 0, 3)
	for _, fn := range trig.AllFunctions() {
		label := "[" + fn.Lower()[:1] + "] " + fn.String()
		style := tabStyle.BorderForeground(theme.Border).Foreground(theme.Text)
		switch {
		case fn == selected:
			c := theme.FunctionColor(fn)
			style = tabStyle.BorderForeground(c).Foreground(c).Bold(true)
		case disabled:
			style = style.Foreground(theme.TextDim)
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
