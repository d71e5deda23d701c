package tui

import (
	"strconv"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	backend string
	horizon string
	theme   string
}

// newSetupForm builds the first-run setup wizard.
func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.backend = cfg.Storage.Backend
	if vals.backend == "" {
		vals.backend = "csv"
	}
	vals.horizon = strconv.Itoa(cfg.General.ForecastHorizon)
	vals.theme = cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to ecotrack!").
				Description("A couple of questions before your first dashboard."),
			huh.NewSelect[string]().
				Title("Storage backend").
				Description("Where weekly waste entries are kept.").
				Options(
					huh.NewOption("CSV file", "csv"),
					huh.NewOption("SQLite database", "sqlite"),
				).
				Value(&vals.backend),
			huh.NewSelect[string]().
				Title("Forecast horizon").
				Description("How many periods ahead to project.").
				Options(
					huh.NewOption("4 periods", "4"),
					huh.NewOption("8 periods", "8"),
					huh.NewOption("12 periods", "12"),
				).
				Value(&vals.horizon),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// saveSetupConfig persists the wizard answers and applies the theme.
func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	if a.setupVals.backend != "" {
		cfg.Storage.Backend = a.setupVals.backend
	}
	if h, err := strconv.Atoi(a.setupVals.horizon); err == nil && h > 0 {
		cfg.General.ForecastHorizon = h
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(cfg.Appearance.Theme)
	}

	_ = config.Save(cfg)
	a.cfg = cfg
	a.recompute()
}
