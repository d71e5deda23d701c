// Package theme defines color themes for the ecotrack TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = CompostDark

// CompostDark is the default theme - earthy dark greens and browns.
var CompostDark = Theme{
	Name:          "compost-dark",
	Background:    lipgloss.Color("#10120E"),
	Surface:       lipgloss.Color("#1A1D17"),
	SurfaceHover:  lipgloss.Color("#262A21"),
	SurfaceBright: lipgloss.Color("#32372B"),
	Border:        lipgloss.Color("#3E4436"),
	BorderBright:  lipgloss.Color("#555D4A"),
	BorderAccent:  lipgloss.Color("#7FA650"),
	TextDim:       lipgloss.Color("#555D4A"),
	TextMuted:     lipgloss.Color("#8A9180"),
	TextPrimary:   lipgloss.Color("#F4F6EE"),
	Accent:        lipgloss.Color("#7FA650"),
	AccentBright:  lipgloss.Color("#9DC46C"),
	AccentDim:     lipgloss.Color("#27331B"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#C98F3D"),
	Red:           lipgloss.Color("#C75146"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#B06486"),
	Cyan:          lipgloss.Color("#4E9A8B"),
}

// LandfillLight is a light theme for bright terminals.
var LandfillLight = Theme{
	Name:          "landfill-light",
	Background:    lipgloss.Color("#F4F3EE"),
	Surface:       lipgloss.Color("#E8E6DD"),
	SurfaceHover:  lipgloss.Color("#DBD8CC"),
	SurfaceBright: lipgloss.Color("#CFCBBC"),
	Border:        lipgloss.Color("#B9B5A7"),
	BorderBright:  lipgloss.Color("#8F8B7E"),
	BorderAccent:  lipgloss.Color("#5E7D33"),
	TextDim:       lipgloss.Color("#A5A194"),
	TextMuted:     lipgloss.Color("#6F6B60"),
	TextPrimary:   lipgloss.Color("#24231E"),
	Accent:        lipgloss.Color("#5E7D33"),
	AccentBright:  lipgloss.Color("#77993F"),
	AccentDim:     lipgloss.Color("#DDE5CC"),
	Green:         lipgloss.Color("#66800B"),
	GreenBright:   lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#BC5215"),
	Red:           lipgloss.Color("#AF3029"),
	Blue:          lipgloss.Color("#205EA6"),
	BlueBright:    lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#AD8301"),
	Magenta:       lipgloss.Color("#A02F6F"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("2"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("2"),
	AccentBright:  lipgloss.Color("10"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{CompostDark, LandfillLight, Terminal}

// ByName returns a theme by its name, defaulting to CompostDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return CompostDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
