// Package tui provides the interactive Bubble Tea dashboard for ecotrack.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/forecast"
	"github.com/theirongolddev/ecotrack/internal/metrics"
	"github.com/theirongolddev/ecotrack/internal/model"
	"github.com/theirongolddev/ecotrack/internal/store"
	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the waste log finishes loading.
type DataLoadedMsg struct {
	Records  []model.WasteRecord
	Err      error
	LoadTime time.Duration
}

// EntryLoggedMsg is sent when a logger form submission has been persisted.
type EntryLoggedMsg struct {
	Records []model.WasteRecord
	Err     error
}

// App is the root Bubble Tea model.
type App struct {
	st  store.Store
	cfg config.Config

	// Data
	records  []model.WasteRecord
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Pre-computed on every data change
	agg         model.AggregateMetrics
	comp        model.Composition
	rates       []model.PeriodRate
	profile     model.Profile
	earned      []model.Badge
	projections []model.Projection
	forecastErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	logger   loggerState
	sorter   sorterState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading
	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5 // minimum content area height
)

// Tab indices, matching components.Tabs order.
const (
	tabDashboard = iota
	tabLogger
	tabSorter
	tabForecast
	tabProfile
	tabSettings
)

// NewApp creates a new TUI app model.
func NewApp(st store.Store, cfg config.Config) App {
	needSetup := !config.Exists()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		st:        st,
		cfg:       cfg,
		needSetup: needSetup,
		spinner:   sp,
	}
	a.logger = newLoggerState()
	a.sorter = newSorterState()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		loadDataCmd(a.st),
		a.spinner.Tick,
		a.logger.form.Init(),
	}
	return tea.Batch(cmds...)
}

// recompute refreshes all derived metrics from the current record set.
func (a *App) recompute() {
	a.agg = metrics.Aggregate(a.records)
	a.comp = metrics.Composition(a.records)
	a.rates = metrics.PeriodRates(a.records)
	a.profile = metrics.LevelProgress(a.records)
	a.earned = metrics.Badges(a.records)
	a.projections, a.forecastErr = forecast.FitAndProject(a.rates, a.horizon())
}

func (a App) horizon() int {
	if a.cfg.General.ForecastHorizon > 0 {
		return a.cfg.General.ForecastHorizon
	}
	return forecast.DefaultHorizon
}

func (a App) targetRate() float64 {
	if a.cfg.General.TargetRatePct > 0 {
		return a.cfg.General.TargetRatePct
	}
	return metrics.TargetRatePct
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Logger form owns the keyboard while focused
		if a.activeTab == tabLogger {
			return a.updateLogger(msg)
		}

		// Sorter text input owns the keyboard while focused
		if a.activeTab == tabSorter && a.sorter.input.Focused() {
			return a.updateSorter(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Sorter tab: start typing
		if a.activeTab == tabSorter {
			switch key {
			case "i", "/", "enter":
				a.sorter.input.Focus()
				return a, a.sorter.input.Cursor.BlinkCmd()
			}
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				if idx == tabLogger {
					return a, a.logger.form.Init()
				}
				return a, nil
			}
		}
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case DataLoadedMsg:
		a.records = msg.Records
		a.loadErr = msg.Err
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.recompute()

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals, a.cfg)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case EntryLoggedMsg:
		a.logger.saving = false
		if msg.Err != nil {
			a.logger.flash = "Could not save entry: " + msg.Err.Error()
			a.logger.flashErr = true
		} else {
			a.records = msg.Records
			a.recompute()
			latest := a.records[len(a.records)-1]
			a.logger.flash = fmt.Sprintf("Logged %s. Diversion rate now %.1f%%.",
				latest.Date.Format("2006-01-02"), a.agg.DiversionRatePct)
			a.logger.flashErr = false
		}
		a.logger.resetForm()
		return a, a.logger.form.Init()

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, form ticks)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.activeTab == tabLogger {
		return a.updateLoggerMsg(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ecotrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("♻ ecotrack"))
	b.WriteString(subtitleStyle.Render(" · Waste Diversion Tracker"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading waste log..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("♻ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d l s f p x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate settings fields"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Submit / Confirm"},
		{"Esc", "Back / Cancel"},
		{"i", "Type an item in the sorter"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, len(a.records), a.agg.DiversionRatePct, a.targetRate())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabLogger:
		content = a.renderLoggerTab(cw)
	case tabSorter:
		content = a.renderSorterTab(cw)
	case tabForecast:
		content = a.renderForecastTab(cw)
	case tabProfile:
		content = a.renderProfileTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// loadDataCmd loads the waste log in a background command.
func loadDataCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		records, err := st.Load()
		return DataLoadedMsg{
			Records:  records,
			Err:      err,
			LoadTime: time.Since(start),
		}
	}
}

// appendEntryCmd persists a new entry in a background command.
func appendEntryCmd(st store.Store, recyclingKg, compostKg, landfillKg float64) tea.Cmd {
	return func() tea.Msg {
		records, err := st.Append(recyclingKg, compostKg, landfillKg)
		return EntryLoggedMsg{Records: records, Err: err}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two-column separator between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
