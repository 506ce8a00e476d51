package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Fade renders s at the given opacity by blending its text colour from bg
// (alpha 0) to fg (alpha 1). Existing styling is dropped below full opacity.
func Fade(s string, alpha float64, fg, bg lipgloss.Color) string {
	if alpha >= 1 {
		return s
	}
	style := lipgloss.NewStyle().Foreground(Blend(bg, fg, alpha))
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := len(line) - len(strings.TrimLeft(line, " "))
		body := strings.TrimRight(line[lead:], " ")
		trail := len(line) - lead - len(body)
		lines[i] = line[:lead] + style.Render(body) + strings.Repeat(" ", trail)
	}
	return strings.Join(lines, "\n")
}

// Blend mixes from and to in Lab space; t=0 is from, t=1 is to. Colours that
// are not hex values fall back to to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return to
	}
	return lipgloss.Color(a.BlendLab(b, clamp01(t)).Clamped().Hex())
}

func clamp01(t float64) float64 {
	return min(1, max(0, t))
}
