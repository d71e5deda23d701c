package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	agg := a.agg
	var b strings.Builder

	if len(a.records) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No waste records yet. Head to the Logger tab to add one.")
		b.WriteString(components.ContentCard("Dashboard", empty, cw))
		return b.String()
	}

	// Row 1: Metric cards
	target := a.targetRate()
	rateDelta := fmt.Sprintf("%+.1fpp vs %.0f%% target", agg.DiversionRatePct-target, target)

	cards := []struct{ Label, Value, Delta string }{
		{"Diverted", cli.FormatKg(agg.DivertedKg), "recycling + compost"},
		{"Landfill", cli.FormatKg(agg.TotalLandfillKg), ""},
		{"Diversion Rate", cli.FormatRate(agg.DiversionRatePct), rateDelta},
		{"Entries", strconv.Itoa(len(a.records)), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Per-entry diversion rate chart
	chartVals := make([]float64, len(a.rates))
	chartLabels := make([]string, len(a.rates))
	for i, r := range a.rates {
		chartVals[i] = r.RatePct
		chartLabels[i] = strconv.Itoa(r.Period)
	}
	chartH := 10
	if a.isCompactLayout() {
		chartH = 7
	}
	b.WriteString(components.ContentCard(
		"Diversion Rate by Entry (%)",
		components.BarChart(chartVals, chartLabels, t.Green, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Composition + target progress
	halves := components.LayoutRow(cw, 2)

	compBody := a.renderCompositionBody(components.CardInnerWidth(halves[0]))
	targetBody := components.TargetBar("Rate", agg.DiversionRatePct, target, 5, components.CardInnerWidth(halves[1])-24)

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Composition", a.renderCompositionBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Target", components.TargetBar("Rate", agg.DiversionRatePct, target, 5, components.CardInnerWidth(cw)-24), cw))
	} else {
		compCard := components.ContentCard("Composition", compBody, halves[0])
		targetCard := components.ContentCard("Target", targetBody, halves[1])
		b.WriteString(components.CardRow([]string{compCard, targetCard}))
	}

	return b.String()
}

// renderCompositionBody draws one labeled bar per waste stream, scaled to
// the largest share.
func (a App) renderCompositionBody(innerW int) string {
	t := theme.Active
	comp := a.comp

	type stream struct {
		label string
		pct   float64
		color lipgloss.Color
	}
	streams := []stream{
		{"Recycling", comp.RecyclingPct, t.Green},
		{"Compost", comp.CompostPct, t.Orange},
		{"Landfill", comp.LandfillPct, t.Red},
	}

	maxPct := 0.0
	for _, s := range streams {
		if s.pct > maxPct {
			maxPct = s.pct
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	barMax := innerW - 18
	if barMax < 1 {
		barMax = 1
	}

	var b strings.Builder
	for _, s := range streams {
		barLen := 0
		if maxPct > 0 {
			barLen = int(s.pct / maxPct * float64(barMax))
		}
		bar := lipgloss.NewStyle().Foreground(s.color).Background(t.Surface).
			Render(strings.Repeat("█", barLen))
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-9s", s.label)),
			bar,
			pctStyle.Render(fmt.Sprintf("%.0f%%", s.pct)))
	}
	return b.String()
}
