package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorBg       lipgloss.Color = "#1e1e2e"
	ColorMantle   lipgloss.Color = "#181825"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorPink     lipgloss.Color = "#f5c2e7"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorError    lipgloss.Color = "#f38ba8"
)

var (
	TitleStyle       = lipgloss.NewStyle().Foreground(ColorPink).Bold(true)
	LabelStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle       = lipgloss.NewStyle().Foreground(ColorText)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(ColorBorder).Italic(true)
	FocusStyle       = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	CardStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 2)
	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPink).
			Padding(1, 3)

	statusBarStyle    = lipgloss.NewStyle().Foreground(ColorSuccess).Background(ColorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(ColorError).Background(ColorSurface0)
	footerStyle       = lipgloss.NewStyle().Background(ColorMantle)
)

// DefaultCompositor fades towards the app background.
func DefaultCompositor() Compositor {
	return Compositor{Foreground: ColorText, Background: ColorBg}
}
