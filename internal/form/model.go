// Package form is the host screen: three picker-backed fields and a Show
// action. Pickers are presented over the form through a transition session
// and the chosen values flow back through their completion callbacks.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/modalpick/internal/database/repository"
	"github.com/jask/modalpick/internal/keys"
	"github.com/jask/modalpick/internal/picker"
	"github.com/jask/modalpick/internal/transition"
	"github.com/jask/modalpick/internal/widgets"
)

// Store persists completed forms.
type Store interface {
	Insert(ctx context.Context, s repository.Submission) (repository.Submission, error)
	Latest(ctx context.Context) (*repository.Submission, error)
	List(ctx context.Context) ([]repository.Submission, error)
}

type Options struct {
	Request transition.Request
	Locale  string
	FPS     int
	Keys    *keys.Registry
	// Store may be nil; submissions are then shown but not kept.
	Store  Store
	Logger zerolog.Logger
	// DriverOptions are passed to the transition driver (tracer, meter).
	DriverOptions []transition.Option
	// SaveStyle persists the style picked with the cycle key. May be nil.
	SaveStyle func(transition.Style) error
	// Now seeds the date picker; defaults to time.Now.
	Now func() time.Time
}

// barRows is the status bar plus the footer.
const barRows = 2

type Model struct {
	ctx    context.Context
	keys   *keys.Registry
	store  Store
	log    zerolog.Logger
	save   func(transition.Style) error
	now    func() time.Time
	locale string
	req    transition.Request
	frame  time.Duration

	animator   *transition.FrameAnimator
	session    *transition.Session
	compositor widgets.Compositor
	container  *transition.Surface
	host       *transition.Surface
	alert      *transition.Surface

	picker    *picker.Screen
	values    [fieldCount]string
	date      time.Time
	cursor    field
	alertText string

	status    string
	statusErr bool
	width     int
	height    int
	ticking   bool
	quitting  bool
}

func New(ctx context.Context, opts Options) *Model {
	if opts.Keys == nil {
		opts.Keys = keys.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Request.Style == "" {
		opts.Request = transition.NewRequest(transition.FadeInWithSubviewZoom).WithZoomTag(picker.CardTag)
	}
	m := &Model{
		ctx:        ctx,
		keys:       opts.Keys,
		store:      opts.Store,
		log:        opts.Logger,
		save:       opts.SaveStyle,
		now:        opts.Now,
		locale:     opts.Locale,
		req:        opts.Request,
		frame:      time.Second / time.Duration(opts.FPS),
		animator:   transition.NewFrameAnimator(),
		compositor: widgets.DefaultCompositor(),
	}
	driverOpts := append([]transition.Option{transition.WithLogger(opts.Logger)}, opts.DriverOptions...)
	driver := transition.NewDriver(m.animator, driverOpts...)

	m.container = transition.NewSurface("window", nil)
	m.host = transition.NewSurface("form", transition.RenderFunc(m.renderForm))
	m.container.AddSubview(m.host)
	m.alert = transition.NewSurface("alert", transition.RenderFunc(m.renderAlert))
	m.session = transition.NewSession(driver, m.container)
	m.resize(80, 24)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.loadLatest()
}

func (m *Model) loadLatest() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return func() tea.Msg {
		sub, err := m.store.Latest(m.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load last submission: %w", err)}
		}
		return latestMsg{sub}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		m.animator.Advance(time.Time(msg))
		if m.animator.Active() {
			return m, m.tick()
		}
		m.ticking = false
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.picker != nil && m.session.Phase() == transition.Presented && m.picker.Update(msg) {
			return m, m.requestDismiss()
		}
	case latestMsg:
		if msg.sub != nil && m.isEmpty() {
			m.values = [fieldCount]string{msg.sub.Date, msg.sub.BloodGroup, msg.sub.Division}
			m.setStatus("restored last submission", false)
		}
	case savedMsg:
		m.log.Info().Str("id", msg.sub.ID).Int("total", msg.total).Msg("submission saved")
		m.setStatus(fmt.Sprintf("saved (%d on record)", msg.total), false)
	case statusMsg:
		m.setStatus(string(msg), false)
	case errMsg:
		m.log.Warn().Err(msg.error).Msg("form error")
		m.setStatus("error: "+msg.Error(), true)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.scope()
	if m.keys.IsAction(msg, keys.Quit, scope) {
		return m.quit()
	}
	switch scope {
	case keys.ScopeAlert:
		if m.keys.IsAction(msg, keys.Cancel, scope) {
			m.closeAlert()
		}
		return m, nil
	case keys.ScopePicker:
		// input waits until the modal is fully on screen
		if m.session.Phase() != transition.Presented {
			return m, nil
		}
		if m.picker.Update(msg) {
			return m, m.requestDismiss()
		}
		return m, nil
	}

	switch m.keys.Action(msg, keys.ScopeForm) {
	case keys.Up:
		if m.cursor > fieldDate {
			m.cursor--
		}
	case keys.Down:
		if m.cursor < fieldShow {
			m.cursor++
		}
	case keys.Open:
		if m.cursor == fieldShow {
			return m, m.show()
		}
		return m, m.requestPresent(m.cursor)
	case keys.Submit:
		return m, m.show()
	case keys.CycleStyle:
		m.req.Style = m.req.Style.Next()
		m.setStatus("transition: "+m.req.Style.Label(), false)
		return m, m.saveStyle(m.req.Style)
	}
	return m, nil
}

func (m *Model) saveStyle(style transition.Style) tea.Cmd {
	if m.save == nil {
		return nil
	}
	return func() tea.Msg {
		if err := m.save(style); err != nil {
			return errMsg{fmt.Errorf("save transition style: %w", err)}
		}
		return statusMsg("transition: " + style.Label() + " (saved)")
	}
}

func (m *Model) scope() string {
	switch {
	case m.alert.Superview() != nil:
		return keys.ScopeAlert
	case m.picker != nil:
		return keys.ScopePicker
	}
	return keys.ScopeForm
}

// requestPresent opens the picker for f over the form.
func (m *Model) requestPresent(f field) tea.Cmd {
	cfg := picker.Config{Title: f.label(), Mode: picker.ModeList, Options: f.options(), Locale: m.locale}
	if f == fieldDate {
		cfg.Mode = picker.ModeDate
		cfg.Date = m.date
		if cfg.Date.IsZero() {
			cfg.Date = m.now()
		}
	}
	screen := picker.New(cfg, m.keys)
	screen.OnDone = func(value string) {
		m.values[f] = value
		if f == fieldDate {
			m.date = screen.Wheel().Date()
		}
	}
	screen.Layout(m.container.Frame)

	m.picker = screen
	err := m.session.Present(m.req, m.host, screen.Surface(), func(finished bool) {
		if !finished {
			m.picker = nil
		}
	})
	if err != nil {
		m.picker = nil
		m.setStatus(humanError(err), true)
		m.log.Warn().Err(err).Str("field", f.label()).Msg("picker not presented")
		return nil
	}
	m.log.Debug().Str("field", f.label()).Str("style", string(m.req.Style)).Msg("picker presented")
	return m.startTicking()
}

// requestDismiss removes the closed picker with the exit animation.
func (m *Model) requestDismiss() tea.Cmd {
	err := m.session.Dismiss(func(bool) {
		m.picker = nil
	})
	if err != nil {
		m.setStatus(humanError(err), true)
		return nil
	}
	return m.startTicking()
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.animator.Active() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// show raises the alert and, for a complete form, saves it.
func (m *Model) show() tea.Cmd {
	if !m.complete() {
		m.openAlert(incompleteMessage)
		return nil
	}
	m.openAlert(strings.Join(m.values[:], "\n"))
	if m.store == nil {
		return nil
	}
	sub := repository.Submission{Date: m.values[fieldDate], BloodGroup: m.values[fieldBloodGroup], Division: m.values[fieldDivision]}
	return func() tea.Msg {
		saved, err := m.store.Insert(m.ctx, sub)
		if err != nil {
			return errMsg{fmt.Errorf("save submission: %w", err)}
		}
		all, err := m.store.List(m.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("list submissions: %w", err)}
		}
		return savedMsg{sub: saved, total: len(all)}
	}
}

func (m *Model) openAlert(text string) {
	m.alertText = text
	m.alert.Frame = m.container.Frame
	m.container.AddSubview(m.alert)
}

func (m *Model) closeAlert() {
	m.alert.RemoveFromSuperview()
	m.alertText = ""
}

func (m *Model) complete() bool {
	for _, v := range m.values {
		if v == "" {
			return false
		}
	}
	return true
}

func (m *Model) isEmpty() bool {
	for _, v := range m.values {
		if v != "" {
			return false
		}
	}
	return true
}

// quit snaps any running transition to its end so every completion fires.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.animator.Flush()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width, m.height = max(1, width), max(1, height)
	frame := transition.NewRect(0, 0, float64(m.width), float64(max(1, m.height-barRows)))
	m.container.Frame = frame
	m.host.Frame = frame
	m.alert.Frame = frame
	if m.picker != nil {
		m.picker.Layout(frame)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func humanError(err error) string {
	switch {
	case errors.Is(err, transition.ErrBusy):
		return "a picker is already open"
	case errors.Is(err, transition.ErrNotPresented):
		return "no picker to close"
	}
	return "error: " + err.Error()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return strings.Join([]string{
		m.compositor.Render(m.container),
		widgets.RenderStatusBar(m.status, m.statusErr, m.width),
		widgets.RenderFooter(m.keys.Help(m.scope()), m.width),
	}, "\n")
}

// Value returns the current text of a field, for tests and callers that
// inspect the form after the program ends.
func (m *Model) Value(label string) string {
	for i := 0; i < fieldCount; i++ {
		if field(i).label() == label {
			return m.values[i]
		}
	}
	return ""
}
