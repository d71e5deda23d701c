package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/metrics"
	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProfileTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	levelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	earnedStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	lockedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	// Level card
	barW := components.CardInnerWidth(cw) - 8
	if barW > 50 {
		barW = 50
	}
	if barW < 10 {
		barW = 10
	}

	var levelBody strings.Builder
	levelBody.WriteString(levelStyle.Render(fmt.Sprintf("Level %d", a.profile.Level)))
	levelBody.WriteString("\n\n")
	levelBody.WriteString(components.ProgressBar(a.profile.ProgressFrac, barW))
	levelBody.WriteString(labelStyle.Render("  to next level"))
	levelBody.WriteString("\n\n")
	levelBody.WriteString(labelStyle.Render(
		fmt.Sprintf("%s diverted from landfill so far", cli.FormatKg(a.profile.TotalDivertedKg))))

	b.WriteString(components.ContentCard("Eco Level", levelBody.String(), cw))
	b.WriteString("\n")

	// Badge card
	earnedIDs := make(map[string]bool, len(a.earned))
	for _, badge := range a.earned {
		earnedIDs[badge.ID] = true
	}

	var badgeBody strings.Builder
	for _, badge := range metrics.AllBadges {
		if earnedIDs[badge.ID] {
			badgeBody.WriteString(earnedStyle.Render(fmt.Sprintf("★ %-22s", badge.Name)))
			badgeBody.WriteString(labelStyle.Render("earned"))
		} else {
			badgeBody.WriteString(lockedStyle.Render(fmt.Sprintf("☆ %-22s", badge.Name)))
			remaining := badge.ThresholdKg - a.profile.TotalDivertedKg
			badgeBody.WriteString(lockedStyle.Render(
				fmt.Sprintf("%s to go", cli.FormatKg(remaining))))
		}
		badgeBody.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Badges", badgeBody.String(), cw))
	return b.String()
}
