package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/trig"
)

// Color palette
var (
	Primary      = lipgloss.Color("#6366F1") // Indigo
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F59E0B") // Amber
	ArcadeYellow = lipgloss.Color("#FACC15")
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
)

// Plot inks
var (
	SineColor    = lipgloss.Color("#EF4444")
	CosineColor  = lipgloss.Color("#3B82F6")
	TangentColor = lipgloss.Color("#10B981")
	AxisColor    = lipgloss.Color("#475569")
	CircleColor  = lipgloss.Color("#CBD5E1")
	RadiusColor  = lipgloss.Color("#E2E8F0")
	GuideColor   = lipgloss.Color("#64748B")
)

// FunctionColor is the ink used for fn's projection, wave and marker.
func FunctionColor(fn trig.Function) color.Color {
	switch fn {
	case trig.Cosine:
		return CosineColor
	case trig.Tangent:
		return TangentColor
	default:
		return SineColor
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
