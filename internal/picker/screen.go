// Package picker implements the modal picker screen: a list or date selector
// shown over the form, reporting the user's choice when it closes.
package picker

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalpick/internal/keys"
	"github.com/jask/modalpick/internal/transition"
	"github.com/jask/modalpick/internal/widgets"
)

// CardTag tags the widget card so the zoom transition can find it.
const CardTag = 663

// backdrop is how strongly the modal dims the form behind it.
const backdrop = 0.6

type Mode int

const (
	ModeDate Mode = iota
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeDate:
		return "date"
	case ModeList:
		return "list"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Config describes what a picker shows.
type Config struct {
	Title   string
	Mode    Mode
	Options []string
	// Date seeds date mode; zero means today.
	Date   time.Time
	Locale string
}

// Screen is one picker presentation. It is discarded after it closes.
type Screen struct {
	cfg   Config
	keys  *keys.Registry
	list  *List
	wheel *DateWheel

	surface *transition.Surface
	card    *transition.Surface
	closed  bool

	// OnDone receives the chosen value when "done" fires with a value.
	OnDone func(value string)
	// OnDismissWithoutChoice fires when the background is tapped.
	OnDismissWithoutChoice func()
}

func New(cfg Config, reg *keys.Registry) *Screen {
	if reg == nil {
		reg = keys.Default()
	}
	s := &Screen{cfg: cfg, keys: reg}
	switch cfg.Mode {
	case ModeList:
		s.list = NewList(cfg.Options)
		s.list.Select(0)
	case ModeDate:
		seed := cfg.Date
		if seed.IsZero() {
			seed = time.Now()
		}
		s.wheel = NewDateWheel(seed)
	}
	s.surface = transition.NewSurface("picker", nil)
	s.surface.Backdrop = backdrop
	s.card = transition.NewSurface("picker-card", transition.RenderFunc(s.renderCard))
	s.card.Tag = CardTag
	s.surface.AddSubview(s.card)
	return s
}

func (s *Screen) Mode() Mode { return s.cfg.Mode }

func (s *Screen) Title() string { return s.cfg.Title }

// Surface is the full-size modal surface handed to the transition driver.
func (s *Screen) Surface() *transition.Surface { return s.surface }

func (s *Screen) List() *List { return s.list }

func (s *Screen) Wheel() *DateWheel { return s.wheel }

func (s *Screen) Closed() bool { return s.closed }

// Layout sizes the modal to frame and centres the card inside it.
func (s *Screen) Layout(frame transition.Rect) {
	s.surface.Frame = frame
	content := s.content()
	w := float64(lipgloss.Width(content) + widgets.CardStyle.GetHorizontalFrameSize())
	h := float64(lipgloss.Height(content) + widgets.CardStyle.GetVerticalFrameSize())
	w, h = min(w, frame.W), min(h, frame.H)
	s.card.Frame = transition.NewRect(float64(int((frame.W-w)/2)), float64(int((frame.H-h)/2)), w, h)
}

// Update handles one message and reports whether the screen closed.
func (s *Screen) Update(msg tea.Msg) bool {
	if s.closed {
		return true
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s.handleKey(msg)
	case tea.MouseMsg:
		// only a left click is a tap; wheel events also arrive as presses
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !s.insideCard(msg.X, msg.Y) {
			s.dismissWithoutChoice()
		}
	}
	return s.closed
}

func (s *Screen) handleKey(msg tea.KeyMsg) {
	switch s.keys.Action(msg, keys.ScopePicker) {
	case keys.Done:
		s.done()
		return
	case keys.Cancel:
		s.dismissWithoutChoice()
		return
	case keys.Up:
		s.step(-1)
		return
	case keys.Down:
		s.step(1)
		return
	case keys.Left:
		if s.wheel != nil {
			s.wheel.FocusLeft()
		}
		return
	case keys.Right:
		if s.wheel != nil {
			s.wheel.FocusRight()
		}
		return
	}
	if s.list == nil {
		return
	}
	switch msg.Type {
	case tea.KeyBackspace:
		s.list.Backspace()
	case tea.KeyRunes, tea.KeySpace:
		s.list.Type(string(msg.Runes))
	}
}

func (s *Screen) step(delta int) {
	switch {
	case s.list != nil && delta < 0:
		s.list.CursorUp()
	case s.list != nil:
		s.list.CursorDown()
	case s.wheel != nil:
		s.wheel.Step(delta)
	}
}

// done reports the current value, if any, and closes the screen.
func (s *Screen) done() {
	s.closed = true
	if s.OnDone == nil {
		return
	}
	switch s.cfg.Mode {
	case ModeList:
		if value, ok := s.list.Highlighted(); ok {
			s.OnDone(value)
		}
	case ModeDate:
		s.OnDone(FormatMedium(s.wheel.Date(), s.cfg.Locale))
	}
}

func (s *Screen) dismissWithoutChoice() {
	s.closed = true
	if s.OnDismissWithoutChoice != nil {
		s.OnDismissWithoutChoice()
	}
}

// insideCard tests a point in container cells against the card's frame.
func (s *Screen) insideCard(x, y int) bool {
	f := s.card.Frame.Offset(s.surface.Frame.X, s.surface.Frame.Y)
	fx, fy := float64(x), float64(y)
	return fx >= f.X && fx < f.X+f.W && fy >= f.Y && fy < f.Y+f.H
}

func (s *Screen) renderCard(width, height int) string {
	style := widgets.CardStyle.
		Width(max(0, width-widgets.CardStyle.GetHorizontalBorderSize())).
		Height(max(0, height-widgets.CardStyle.GetVerticalBorderSize()))
	return style.Render(s.content())
}

func (s *Screen) content() string {
	lines := []string{widgets.TitleStyle.Render(s.cfg.Title), ""}
	switch s.cfg.Mode {
	case ModeList:
		lines = append(lines, s.listLines()...)
	case ModeDate:
		lines = append(lines, s.dateLines()...)
	}
	lines = append(lines, "", widgets.LabelStyle.Render("enter done · esc close"))
	return strings.Join(lines, "\n")
}

// visibleRows is the height of the list wheel.
const visibleRows = 5

func (s *Screen) listLines() []string {
	if s.list.Len() == 0 {
		return []string{widgets.PlaceholderStyle.Render("No options")}
	}
	start := max(0, min(s.list.Cursor()-visibleRows/2, s.list.Len()-visibleRows))
	end := min(s.list.Len(), start+visibleRows)
	out := make([]string, 0, visibleRows+1)
	for i := start; i < end; i++ {
		if i == s.list.Cursor() {
			out = append(out, widgets.FocusStyle.Render("› "+s.list.Label(i)))
			continue
		}
		out = append(out, widgets.ValueStyle.Render("  "+s.list.Label(i)))
	}
	if q := s.list.Query(); q != "" {
		out = append(out, widgets.LabelStyle.Render("jump: "+q))
	}
	return out
}

func (s *Screen) dateLines() []string {
	d := s.wheel.Date()
	cells := []string{
		fmt.Sprintf("%-3s", d.Format("Jan")),
		fmt.Sprintf("%02d", d.Day()),
		fmt.Sprintf("%04d", d.Year()),
	}
	for i := range cells {
		if Column(i) == s.wheel.Focus() {
			cells[i] = widgets.FocusStyle.Render("▲"+cells[i]+"▼")
		} else {
			cells[i] = widgets.ValueStyle.Render(" " + cells[i] + " ")
		}
	}
	return []string{strings.Join(cells, "  "), widgets.LabelStyle.Render(FormatMedium(d, s.cfg.Locale))}
}
