package picker

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/modalpick/internal/transition"
)

var bloodGroups = []string{"A+", "B+", "AB+"}

type recorder struct {
	done      []string
	dismissed int
}

func newScreen(cfg Config) (*Screen, *recorder) {
	rec := &recorder{}
	s := New(cfg, nil)
	s.OnDone = func(v string) { rec.done = append(rec.done, v) }
	s.OnDismissWithoutChoice = func() { rec.dismissed++ }
	s.Layout(transition.NewRect(0, 0, 60, 20))
	return s, rec
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestListHighlightsFirstOption(t *testing.T) {
	s, rec := newScreen(Config{Title: "Blood group", Mode: ModeList, Options: bloodGroups})
	got, ok := s.List().Highlighted()
	require.True(t, ok)
	require.Equal(t, "A+", got)

	require.True(t, s.Update(key(tea.KeyEnter)))
	require.Equal(t, []string{"A+"}, rec.done)
	require.Zero(t, rec.dismissed)
}

func TestListDoneAfterMoving(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeList, Options: bloodGroups})
	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyUp))
	s.Update(key(tea.KeyEnter))
	require.Equal(t, []string{"B+"}, rec.done)
}

func TestEmptyListDoneFiresNothing(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeList})
	_, ok := s.List().Highlighted()
	require.False(t, ok)

	require.True(t, s.Update(key(tea.KeyEnter)), "done still closes the picker")
	require.Empty(t, rec.done)
	require.Zero(t, rec.dismissed)
}

func TestDateDoneFormatsMedium(t *testing.T) {
	selected := time.Date(2021, 3, 5, 17, 45, 0, 0, time.UTC)
	s, rec := newScreen(Config{Mode: ModeDate, Date: selected, Locale: "en_US.UTF-8"})
	require.True(t, s.Update(key(tea.KeyEnter)))
	require.Equal(t, []string{"Mar 5, 2021"}, rec.done)
}

func TestBackgroundTapDismissesWithoutChoice(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeList, Options: bloodGroups})
	require.True(t, s.Update(key(tea.KeyEsc)))
	require.Empty(t, rec.done)
	require.Equal(t, 1, rec.dismissed)

	require.True(t, s.Update(key(tea.KeyEnter)), "a closed screen ignores input")
	require.Empty(t, rec.done)
}

func TestMouseOutsideCardDismisses(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeList, Options: bloodGroups})
	card := s.Surface().ViewWithTag(CardTag)
	require.NotNil(t, card)

	inside := tea.MouseMsg{X: int(card.Frame.X) + 1, Y: int(card.Frame.Y) + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.False(t, s.Update(inside))

	outside := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.True(t, s.Update(outside))
	require.Equal(t, 1, rec.dismissed)
	require.Empty(t, rec.done)
}

func TestTypeToJump(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeList, Options: []string{"A+", "B+", "AB+", "O+", "A-", "B-", "AB-", "O-"}})
	s.Update(typed("a"))
	got, _ := s.List().Highlighted()
	require.Equal(t, "A+", got)

	s.Update(typed("b"))
	s.Update(typed("-"))
	got, _ = s.List().Highlighted()
	require.Equal(t, "AB-", got)

	s.Update(key(tea.KeyBackspace))
	got, _ = s.List().Highlighted()
	require.Equal(t, "AB+", got)

	s.Update(key(tea.KeyEnter))
	require.Equal(t, []string{"AB+"}, rec.done)
}

func TestDateWheelColumns(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeDate, Date: time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC), Locale: "en_US"})
	s.Update(key(tea.KeyDown)) // month +1, day clamps to Feb 28
	require.Equal(t, time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC), s.Wheel().Date())

	s.Update(key(tea.KeyRight))
	s.Update(key(tea.KeyUp))
	require.Equal(t, 27, s.Wheel().Date().Day())

	s.Update(key(tea.KeyRight))
	s.Update(key(tea.KeyUp))
	require.Equal(t, 2020, s.Wheel().Date().Year())

	s.Update(key(tea.KeyEnter))
	require.Equal(t, []string{"Feb 27, 2020"}, rec.done)
}

func TestCardRendersInsideFrame(t *testing.T) {
	s, _ := newScreen(Config{Title: "Division", Mode: ModeList, Options: []string{"Dhaka", "Sylhet"}})
	card := s.Surface().ViewWithTag(CardTag)
	_, _, w, h := card.Frame.Round()
	out := ansi.Strip(card.Body.Render(w, h))
	require.Contains(t, out, "Division")
	require.Contains(t, out, "› Dhaka")
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), w)
	}
}

func TestMouseWheelOutsideCardKeepsScreenOpen(t *testing.T) {
	s, rec := newScreen(Config{Mode: ModeList, Options: bloodGroups})
	for _, b := range []tea.MouseButton{tea.MouseButtonWheelDown, tea.MouseButtonWheelUp} {
		require.False(t, s.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: b}))
	}
	require.False(t, s.Closed())
	require.Zero(t, rec.dismissed)
	require.Empty(t, rec.done)
}
