package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/render"
	"github.com/abhisek/geomotion/internal/screens/welcome"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/components"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := welcome.BannerArt
	if compact || cw < welcome.BannerWidth {
		title = welcome.BannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderPreview draws a small static unit circle in place of a logo.
func renderPreview(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(render.Circle(trig.Sine, trig.InitialAngle, 20, 5))
}

// renderStatusBar shows the mode, the tutor status and the score.
func renderStatusBar(mode, provider string, score, total, cw int, compact bool) string {
	modeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	tutor := dimStyle.Render("◇ TUTOR OFFLINE")
	if provider != "" {
		tutor = tutorStyle.Render("◆ TUTOR " + strings.ToUpper(provider))
	}
	if compact {
		tutor = dimStyle.Render("◇")
		if provider != "" {
			tutor = tutorStyle.Render("◆")
		}
	}

	stats := fmt.Sprintf("%s  %s  %s",
		modeStyle.Render("▶ "+strings.ToUpper(mode)),
		tutor,
		scoreStyle.Render(fmt.Sprintf("★ %d/%d", score, total)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, 0, len(items))
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderLLMBanner renders a note when tutor mode has no provider.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to use the tutor (see geomotion --help)")
}
