package components

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with a compact diversion
// rate indicator on the right. targetPct of 0 hides the indicator.
func RenderStatusBar(width, entryCount int, ratePct, targetPct float64) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if entryCount > 0 {
		right = fmt.Sprintf("%d entries ", entryCount)
	}
	if targetPct > 0 {
		right = CompactRateBar("rate", ratePct/targetPct, 24) + "  " + right
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
