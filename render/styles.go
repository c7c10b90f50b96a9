package render

import "github.com/charmbracelet/lipgloss"

// Palette used by DefaultStyles.
var (
	ColorPath     = lipgloss.Color("#2CD7C7")
	ColorStart    = lipgloss.Color("#20B9B4")
	ColorGoal     = lipgloss.Color("#F4D03F")
	ColorObstacle = lipgloss.Color("#2C4A54")
	ColorBorder   = lipgloss.Color("#16858E")
	ColorTop      = lipgloss.Color("#E74C3C")
)

// Styles groups the lipgloss styles used for every rendered element.
type Styles struct {
	Title    lipgloss.Style
	Floor    lipgloss.Style
	Obstacle lipgloss.Style
	Start    lipgloss.Style
	Goal     lipgloss.Style
	Path     lipgloss.Style
	Top      lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles returns the colored, boxed terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
		Floor:    lipgloss.NewStyle(),
		Obstacle: lipgloss.NewStyle().Foreground(ColorObstacle),
		Start:    lipgloss.NewStyle().Bold(true).Foreground(ColorStart),
		Goal:     lipgloss.NewStyle().Bold(true).Foreground(ColorGoal),
		Path:     lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
		Top:      lipgloss.NewStyle().Bold(true).Foreground(ColorTop),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
	}
}

// PlainStyles returns unstyled output, suitable for files and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Floor:    plain,
		Obstacle: plain,
		Start:    plain,
		Goal:     plain,
		Path:     plain,
		Top:      plain,
		Box:      plain,
	}
}
