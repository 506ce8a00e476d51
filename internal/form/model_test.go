package form

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/modalpick/internal/database/repository"
	"github.com/jask/modalpick/internal/transition"
)

var epoch = time.Date(2021, 3, 5, 9, 30, 0, 0, time.UTC)

type fakeStore struct {
	inserted []repository.Submission
	latest   *repository.Submission
	err      error
}

func (f *fakeStore) Insert(_ context.Context, s repository.Submission) (repository.Submission, error) {
	if f.err != nil {
		return repository.Submission{}, f.err
	}
	s.ID = "sub-1"
	f.inserted = append(f.inserted, s)
	return s, nil
}

func (f *fakeStore) List(context.Context) ([]repository.Submission, error) {
	return f.inserted, nil
}

func (f *fakeStore) Latest(context.Context) (*repository.Submission, error) {
	return f.latest, f.err
}

func newModel(t *testing.T, store Store) *Model {
	t.Helper()
	opts := Options{
		Request: transition.NewRequest(transition.FadeIn).WithDuration(100 * time.Millisecond),
		Locale:  "en_US",
		FPS:     60,
		Logger:  zerolog.Nop(),
		Now:     func() time.Time { return epoch },
	}
	if store != nil {
		opts.Store = store
	}
	m := New(context.Background(), opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeRunes(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

// settle delivers frames until no animation is running.
func settle(t *testing.T, m *Model) {
	t.Helper()
	now := epoch
	for i := 0; m.animator.Active(); i++ {
		require.Less(t, i, 1000, "animation never finished")
		m.Update(frameMsg(now))
		now = now.Add(16 * time.Millisecond)
	}
}

func TestPickBloodGroup(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyDown)
	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd, "presenting schedules frames")
	require.NotNil(t, m.picker)
	require.Equal(t, transition.PhasePresenting, m.session.Phase())
	require.True(t, m.container.Contains(m.picker.Surface()))

	settle(t, m)
	require.Equal(t, transition.Presented, m.session.Phase())
	require.True(t, m.container.Contains(m.host), "form stays under the modal")

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.Equal(t, "B+", m.Value("Blood group"))
	require.Equal(t, transition.PhaseDismissing, m.session.Phase())

	surface := m.picker.Surface()
	settle(t, m)
	require.Equal(t, transition.Idle, m.session.Phase())
	require.Nil(t, m.picker)
	require.False(t, m.container.Contains(surface))
}

func TestPickDate(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyEnter)
	settle(t, m)
	press(m, tea.KeyEnter)
	settle(t, m)
	require.Equal(t, "Mar 5, 2021", m.Value("Date"))

	// the wheel reopens on the chosen day
	press(m, tea.KeyEnter)
	settle(t, m)
	require.Equal(t, time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC), m.picker.Wheel().Date())
}

func TestEscDismissesWithoutChoice(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	settle(t, m)
	press(m, tea.KeyEsc)
	settle(t, m)
	require.Empty(t, m.Value("Division"))
	require.Equal(t, transition.Idle, m.session.Phase())
}

func TestBackgroundClickDismisses(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	settle(t, m)
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, transition.PhaseDismissing, m.session.Phase())
	settle(t, m)
	require.Empty(t, m.Value("Blood group"))
}

func TestInputIgnoredMidTransition(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	press(m, tea.KeyEnter)
	require.Equal(t, transition.PhasePresenting, m.session.Phase())
	require.Empty(t, m.Value("Blood group"))
}

func TestTypeToJumpInPicker(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	settle(t, m)
	typeRunes(m, "syl")
	press(m, tea.KeyEnter)
	settle(t, m)
	require.Equal(t, "Sylhet", m.Value("Division"))
}

func TestShowIncomplete(t *testing.T) {
	store := &fakeStore{}
	m := newModel(t, store)
	cmd := typeRunes(m, "s")
	require.Nil(t, cmd)
	require.Equal(t, incompleteMessage, m.alertText)
	require.Contains(t, ansi.Strip(m.View()), incompleteMessage)

	press(m, tea.KeyEnter)
	require.Nil(t, m.alert.Superview())
	require.Empty(t, store.inserted)
}

func TestShowCompleteSaves(t *testing.T) {
	store := &fakeStore{}
	m := newModel(t, store)
	m.values = [fieldCount]string{"Mar 5, 2021", "A+", "Dhaka"}
	m.cursor = fieldShow

	cmd := press(m, tea.KeyEnter)
	require.Equal(t, "Mar 5, 2021\nA+\nDhaka", m.alertText)
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Len(t, store.inserted, 1)
	require.Equal(t, "Dhaka", store.inserted[0].Division)
	require.Equal(t, "saved (1 on record)", m.status)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Mar 5, 2021")
	require.Contains(t, view, "Dhaka")
}

func TestSaveErrorShowsStatus(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	m := newModel(t, store)
	m.values = [fieldCount]string{"Mar 5, 2021", "A+", "Dhaka"}
	cmd := typeRunes(m, "s")
	m.Update(cmd())
	require.True(t, m.statusErr)
	require.Contains(t, m.status, "disk full")
}

func TestInitRestoresLatest(t *testing.T) {
	store := &fakeStore{latest: &repository.Submission{Date: "Jan 1, 2020", BloodGroup: "O-", Division: "Khulna"}}
	m := newModel(t, store)
	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, "O-", m.Value("Blood group"))
	require.Equal(t, "Khulna", m.Value("Division"))
}

func TestCycleStyleAppliesToNextPresentation(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyTab)
	require.Equal(t, transition.FadeInWithSubviewZoom, m.req.Style)

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.Equal(t, transition.FadeInWithSubviewZoom, m.session.Request().Style)
	settle(t, m)

	// cycling is a form action; inside the picker tab does nothing
	press(m, tea.KeyTab)
	require.Equal(t, transition.FadeInWithSubviewZoom, m.req.Style)
}

func TestQuitMidTransitionFlushes(t *testing.T) {
	m := newModel(t, nil)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	surface := m.picker.Surface()

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Equal(t, transition.Idle, m.session.Phase())
	require.Nil(t, m.picker)
	require.False(t, m.container.Contains(surface))
	require.Empty(t, m.View())
}

func TestViewShowsPickerOverForm(t *testing.T) {
	m := newModel(t, nil)
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Blood group")
	require.Contains(t, view, "Select")

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	settle(t, m)
	view = ansi.Strip(m.View())
	require.Contains(t, view, "› Dhaka")
}

func TestCycleStylePersistsChoice(t *testing.T) {
	var saved []transition.Style
	m := newModel(t, nil)
	m.save = func(s transition.Style) error {
		saved = append(saved, s)
		return nil
	}
	cmd := press(m, tea.KeyTab)
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, []transition.Style{transition.FadeInWithSubviewZoom}, saved)
	require.False(t, m.statusErr)
	require.Contains(t, m.status, "saved")

	m.save = func(transition.Style) error { return errors.New("read-only config") }
	cmd = press(m, tea.KeyTab)
	m.Update(cmd())
	require.Equal(t, transition.SlideIn, m.req.Style)
	require.True(t, m.statusErr)
	require.Contains(t, m.status, "read-only config")
}
