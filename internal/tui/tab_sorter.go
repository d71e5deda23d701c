package tui

import (
	"strings"

	"github.com/theirongolddev/ecotrack/internal/advice"
	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sorterState tracks the waste sorting guide tab.
type sorterState struct {
	input    textinput.Model
	query    string
	guidance string
}

func newSorterState() sorterState {
	ti := textinput.New()
	ti.Placeholder = "pizza box, battery, glass jar..."
	ti.CharLimit = 100
	ti.Width = 40
	return sorterState{input: ti}
}

func (a App) updateSorter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(a.sorter.input.Value())
		if query != "" {
			a.sorter.query = query
			a.sorter.guidance = advice.Lookup(query)
		}
		a.sorter.input.Blur()
		return a, nil
	case "esc":
		a.sorter.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.sorter.input, cmd = a.sorter.input.Update(msg)
	return a, cmd
}

func (a App) renderSorterTab(cw int) string {
	t := theme.Active

	introStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	queryStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	resultStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	body.WriteString(introStyle.Render("What are you throwing away?"))
	body.WriteString("\n\n")
	body.WriteString(a.sorter.input.View())
	body.WriteString("\n\n")

	if a.sorter.query != "" {
		body.WriteString(queryStyle.Render(truncStr(a.sorter.query, components.CardInnerWidth(cw))))
		body.WriteString("\n")
		body.WriteString(resultStyle.Render(a.sorter.guidance))
		body.WriteString("\n\n")
	}

	if a.sorter.input.Focused() {
		body.WriteString(hintStyle.Render("[Enter] look up  [Esc] done typing"))
	} else {
		body.WriteString(hintStyle.Render("[i] type an item  [Enter] look up"))
	}

	return components.ContentCard("Waste Sorting Guide", body.String(), cw)
}
