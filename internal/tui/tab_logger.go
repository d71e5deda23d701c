package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// maxEntryKg caps a single logged quantity.
const maxEntryKg = 1000

// loggerState tracks the logger tab's entry form.
type loggerState struct {
	form     *huh.Form
	vals     loggerValues
	saving   bool
	flash    string
	flashErr bool
}

type loggerValues struct {
	recycling string
	compost   string
	landfill  string
}

func validateKg(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter a number (0 is fine)")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("not a number")
	}
	if v < 0 {
		return errors.New("must be non-negative")
	}
	if v > maxEntryKg {
		return errors.New("too large for a single entry")
	}
	return nil
}

func newLoggerForm(vals *loggerValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recycling (kg)").
				Placeholder("0").
				Validate(validateKg).
				Value(&vals.recycling),
			huh.NewInput().
				Title("Compost (kg)").
				Placeholder("0").
				Validate(validateKg).
				Value(&vals.compost),
			huh.NewInput().
				Title("Landfill (kg)").
				Placeholder("0").
				Validate(validateKg).
				Value(&vals.landfill),
		),
	)
}

func newLoggerState() loggerState {
	ls := loggerState{}
	ls.form = newLoggerForm(&ls.vals)
	return ls
}

// resetForm rebuilds the form with cleared inputs for the next entry.
func (ls *loggerState) resetForm() {
	ls.vals = loggerValues{}
	ls.form = newLoggerForm(&ls.vals)
}

func (a App) updateLogger(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Tab switching still works from the form via these keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	}
	return a.updateLoggerMsg(msg)
}

func (a App) updateLoggerMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.logger.saving {
		return a, nil
	}

	form, cmd := a.logger.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.logger.form = f
	}

	if a.logger.form.State == huh.StateCompleted {
		r, _ := strconv.ParseFloat(strings.TrimSpace(a.logger.vals.recycling), 64)
		c, _ := strconv.ParseFloat(strings.TrimSpace(a.logger.vals.compost), 64)
		l, _ := strconv.ParseFloat(strings.TrimSpace(a.logger.vals.landfill), 64)
		a.logger.saving = true
		return a, appendEntryCmd(a.st, r, c, l)
	}

	if a.logger.form.State == huh.StateAborted {
		a.logger.resetForm()
		a.activeTab = tabDashboard
		return a, nil
	}

	return a, cmd
}

func (a App) renderLoggerTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	introStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	if a.logger.flashErr {
		flashStyle = lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	}

	var body strings.Builder
	body.WriteString(introStyle.Render("Log this week's waste in kilograms."))
	body.WriteString("\n\n")
	if a.logger.saving {
		body.WriteString(introStyle.Render("Saving..."))
	} else {
		body.WriteString(a.logger.form.View())
	}
	if a.logger.flash != "" {
		body.WriteString("\n")
		body.WriteString(flashStyle.Render(a.logger.flash))
	}

	b.WriteString(components.ContentCard("Log Entry", body.String(), cw))
	return b.String()
}
