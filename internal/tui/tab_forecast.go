package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderForecastTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.forecastErr != nil {
		body := mutedStyle.Render("Not enough data to forecast. Log at least two entries first.")
		b.WriteString(components.ContentCard("Forecast", body, cw))
		return b.String()
	}

	// Combined chart: logged rates then projected rates
	n := len(a.rates) + len(a.projections)
	vals := make([]float64, 0, n)
	labels := make([]string, 0, n)
	for _, r := range a.rates {
		vals = append(vals, r.RatePct)
		labels = append(labels, strconv.Itoa(r.Period))
	}
	for _, p := range a.projections {
		// Negative projections flatten to zero-height bars; the table
		// below still shows the real value.
		v := p.RatePct
		if v < 0 {
			v = 0
		}
		vals = append(vals, v)
		labels = append(labels, strconv.Itoa(p.Period)+"*")
	}

	chartH := 10
	if a.isCompactLayout() {
		chartH = 7
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Diversion Rate Trend (* = projected, next %d periods)", len(a.projections)),
		components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Projection detail
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	target := a.targetRate()
	var detail strings.Builder
	for _, p := range a.projections {
		line := fmt.Sprintf("Period %-3d %6.1f%%", p.Period, p.RatePct)
		if p.RatePct >= target {
			detail.WriteString(valueStyle.Render(line))
			detail.WriteString(labelStyle.Render("  meets target"))
		} else {
			detail.WriteString(valueStyle.Render(line))
		}
		detail.WriteString("\n")
	}

	hitTarget := false
	for _, p := range a.projections {
		if p.RatePct >= target {
			hitTarget = true
			break
		}
	}
	detail.WriteString("\n")
	if hitTarget {
		detail.WriteString(labelStyle.Render(fmt.Sprintf("On track for the %.0f%% target.", target)))
	} else {
		detail.WriteString(warnStyle.Render(fmt.Sprintf("Trend stays below the %.0f%% target.", target)))
	}

	b.WriteString(components.ContentCard("Projections", detail.String(), cw))
	return b.String()
}
