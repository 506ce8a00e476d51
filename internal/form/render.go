package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalpick/internal/widgets"
)

const labelWidth = 13

var (
	buttonStyle      = lipgloss.NewStyle().Foreground(widgets.ColorText).Background(widgets.ColorSurface0).Padding(0, 2)
	buttonFocusStyle = buttonStyle.Foreground(widgets.ColorBg).Background(widgets.ColorAccent).Bold(true)
)

func (m *Model) renderForm(width, height int) string {
	lines := []string{
		widgets.TitleStyle.Render("Modal picker"),
		widgets.LabelStyle.Render(fmt.Sprintf("transition: %s (%s)", m.req.Style.Label(), m.req.Duration)),
		"",
	}
	for i := 0; i < fieldCount; i++ {
		f := field(i)
		marker := "  "
		label := widgets.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.label()))
		if f == m.cursor {
			marker = widgets.FocusStyle.Render("› ")
			label = widgets.FocusStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.label()))
		}
		value := widgets.PlaceholderStyle.Render("Select")
		if v := m.values[i]; v != "" {
			value = widgets.ValueStyle.Render(v)
		}
		lines = append(lines, marker+label+value)
	}
	button := buttonStyle.Render(fieldShow.label())
	if m.cursor == fieldShow {
		button = buttonFocusStyle.Render(fieldShow.label())
	}
	lines = append(lines, "", "  "+button)
	return widgets.Center(strings.Join(lines, "\n"), width, height)
}

func (m *Model) renderAlert(width, height int) string {
	body := m.alertText
	if body != incompleteMessage {
		body = widgets.ValueStyle.Render(body)
	} else {
		body = widgets.FocusStyle.Render(body)
	}
	box := widgets.AlertStyle.Render(body + "\n\n" + widgets.LabelStyle.Render("enter ok"))
	return widgets.Center(box, width, height)
}
