package ui

import "github.com/charmbracelet/lipgloss"

const (
	accentHex   = "#00BFA6"
	focusHex    = "#00FFD1"
	cardHex     = "#CDD6DF"
	cardFarHex  = "#26303A"
	yachtHex    = "#6B7280"
	alertHex    = "#FF8080"
	chipIdleHex = "#888888"
)

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	logoAccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentHex))

	logoDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1F6F64"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: alertHex})

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accentHex))

	navIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	chipIdleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(chipIdleHex))
)

func chipActiveStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color(hex)).
		Underline(true)
}
