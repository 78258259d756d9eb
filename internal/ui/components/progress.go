package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/ui/theme"
)

// Gauge displays a value within [Min, Max] as a horizontal bar.
type Gauge struct {
	Label  string
	Value  float64
	Min    float64
	Max    float64
	Format string // fmt verb for the value, e.g. "%.1fx"
	Width  int
}

// NewGauge creates a gauge.
func NewGauge(label string, value, min, max float64, format string, width int) Gauge {
	return Gauge{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Format: format,
		Width:  width,
	}
}

// Fraction is the filled share of the bar in [0, 1].
func (g Gauge) Fraction() float64 {
	if g.Max <= g.Min {
		return 0
	}
	f := (g.Value - g.Min) / (g.Max - g.Min)
	return max(0, min(1, f))
}

// View renders the gauge.
func (g Gauge) View() string {
	var result string

	if g.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(g.Label) + "  "
	}

	value := ""
	if g.Format != "" {
		value = "  " + fmt.Sprintf(g.Format, g.Value)
	}

	barWidth := g.Width - lipgloss.Width(result) - lipgloss.Width(value)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * g.Fraction())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if value != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(value)
	}
	return result
}
