// Package ui renders the vote dashboard. Uses a light/dark palette with a
// green positive side and an orange-red negative side.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"votedash/internal/config"
)

var (
	// Light Mode Colors
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#dce0e5")
	LightTrack      = lipgloss.Color("#e1e4e8")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#f2f2f2")
	DarkMuted      = lipgloss.Color("#94a3b8")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkTrack      = lipgloss.Color("#1e2a3d")

	// Vote Colors (same in both modes)
	VotePositive = lipgloss.Color("#22c55e") // emerald
	VoteNegative = lipgloss.Color("#f97316") // orange
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Track      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Track:      LightTrack,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Track:      DarkTrack,
		IsDark:     true,
	}
}

// DetectTheme guesses the terminal background from COLORFGBG and falls back
// to light mode.
func DetectTheme() Theme {
	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// ThemeFor resolves a configured theme name. Unknown names and "auto" detect.
func ThemeFor(name string) Theme {
	switch name {
	case config.ThemeLight:
		return LightTheme()
	case config.ThemeDark:
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App  lipgloss.Style
	Card lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Total    lipgloss.Style
	Muted    lipgloss.Style

	// Vote sides
	PositiveCount lipgloss.Style
	NegativeCount lipgloss.Style
	PositiveBadge lipgloss.Style
	NegativeBadge lipgloss.Style
	PositiveBar   lipgloss.Style
	NegativeBar   lipgloss.Style

	// Components
	LiveBadge lipgloss.Style
	Live      lipgloss.Style
	Key       lipgloss.Style
	Divider   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Heading: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Total: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		PositiveCount: lipgloss.NewStyle().Foreground(VotePositive).Bold(true),
		NegativeCount: lipgloss.NewStyle().Foreground(VoteNegative).Bold(true),
		PositiveBadge: badge.Foreground(VotePositive).Border(lipgloss.NormalBorder(), false, true).BorderForeground(VotePositive),
		NegativeBadge: badge.Foreground(VoteNegative).Border(lipgloss.NormalBorder(), false, true).BorderForeground(VoteNegative),
		PositiveBar:   lipgloss.NewStyle().Foreground(VotePositive),
		NegativeBar:   lipgloss.NewStyle().Foreground(VoteNegative),

		LiveBadge: badge.Foreground(theme.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Live: lipgloss.NewStyle().Foreground(VotePositive),

		Key: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
