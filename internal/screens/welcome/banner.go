package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomotion/internal/ui/theme"
)

// BannerArt is the block-letter title shared with the home screen.
const BannerArt = " ___   ___   ___   __  __   ___   _____  ___   ___   _  _\n" +
	"/ __| | __| / _ \\ |  \\/  | / _ \\ |_   _||_ _| / _ \\ | \\| |\n" +
	"| (_ || _| | (_) || |\\/| || (_) |  | |   | | | (_) || .` |\n" +
	" \\___||___| \\___/ |_|  |_| \\___/   |_|  |___| \\___/ |_|\\_|"

// BannerCompact is the fallback for narrow terminals.
const BannerCompact = "G · E · O · M · O · T · I · O · N"

// BannerWidth is the widest line of BannerArt.
const BannerWidth = 59

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth+2 {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
