// Package ui implements the interactive dashboard: tabbed pages for the
// process configuration forms, the profile chart, the summary table and the
// run history.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Semantic colors are shared between both modes.
var (
	// Light mode
	LightForeground = lipgloss.Color("#1b2a1f")
	LightPrimary    = lipgloss.Color("#1f6f43") // bioreactor green
	LightAccent     = lipgloss.Color("#2e9e5b")
	LightMuted      = lipgloss.Color("#7a8a7f")
	LightBorder     = lipgloss.Color("#c6d2c9")

	// Dark mode
	DarkForeground = lipgloss.Color("#e6efe9")
	DarkPrimary    = lipgloss.Color("#4cc38a")
	DarkAccent     = lipgloss.Color("#2e9e5b")
	DarkMuted      = lipgloss.Color("#6f7f75")
	DarkBorder     = lipgloss.Color("#31413a")

	// Semantic
	Destructive = lipgloss.Color("#e5484d")
	Warning     = lipgloss.Color("#f5a623")
	Info        = lipgloss.Color("#2f80ed")

	// Curve colors
	BiomassColor   = lipgloss.Color("#4cc38a") // green
	SubstrateColor = lipgloss.Color("#f5a623") // amber
	ProductColor   = lipgloss.Color("#2f80ed") // blue
)

// Theme holds the active color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or the BIODESIGN_DARK_MODE
// override, defaulting to light.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("BIODESIGN_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used across the pages.
type Styles struct {
	Theme Theme

	Header      lipgloss.Style
	Footer      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	FieldValue   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Divider lipgloss.Style
	Badge   lipgloss.Style

	Biomass   lipgloss.Style
	Substrate lipgloss.Style
	Product   lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		StatusOK: lipgloss.NewStyle().
			Foreground(theme.Accent),

		StatusError: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		FieldFocused: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		FieldValue: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Biomass:   lipgloss.NewStyle().Foreground(BiomassColor),
		Substrate: lipgloss.NewStyle().Foreground(SubstrateColor),
		Product:   lipgloss.NewStyle().Foreground(ProductColor),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", width))
}
