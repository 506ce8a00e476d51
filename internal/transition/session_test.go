package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(NewRect(0, 0, 80, 24))
	s := NewSession(f.driver, f.container)
	req := NewRequest(CoverVertical)
	require.Equal(t, Idle, s.Phase())

	presented := 0
	require.NoError(t, s.Present(req, f.host, f.modal, func(ok bool) {
		require.True(t, ok)
		presented++
	}))
	require.Equal(t, PhasePresenting, s.Phase())
	require.Same(t, f.modal, s.Presented())

	f.finish(req.Duration)
	require.Equal(t, 1, presented)
	require.Equal(t, Presented, s.Phase())
	require.Equal(t, []*Surface{f.host, f.modal}, f.container.Subviews())

	dismissed := 0
	require.NoError(t, s.Dismiss(func(bool) { dismissed++ }))
	require.Equal(t, PhaseDismissing, s.Phase())

	start := epoch.Add(time.Second)
	f.animator.Advance(start)
	f.animator.Advance(start.Add(req.Duration))
	require.Equal(t, 1, dismissed)
	require.Equal(t, Idle, s.Phase())
	require.Nil(t, s.Presented())
	require.Equal(t, []*Surface{f.host}, f.container.Subviews(), "only the presenter is left")
}

func TestSessionDismissUsesPresentedStyle(t *testing.T) {
	f := newFixture(NewRect(0, 0, 80, 24))
	s := NewSession(f.driver, f.container)
	req := NewRequest(CoverHorizontal).WithDuration(100 * time.Millisecond)

	require.NoError(t, s.Present(req, f.host, f.modal, nil))
	f.finish(req.Duration)
	require.NoError(t, s.Dismiss(nil))
	require.Equal(t, req, s.Request())

	start := epoch.Add(time.Second)
	f.animator.Advance(start)
	f.animator.Advance(start.Add(req.Duration / 2))
	require.InDelta(t, 40.0, f.modal.Frame.X, 1e-9, "linear exit halfway to the right edge")
	f.animator.Advance(start.Add(req.Duration))
	require.Equal(t, f.container.Frame.RightOf(), f.modal.Frame)
}

func TestSessionRejectsDoubleDismiss(t *testing.T) {
	f := newFixture(NewRect(0, 0, 80, 24))
	s := NewSession(f.driver, f.container)

	require.ErrorIs(t, s.Dismiss(nil), ErrNotPresented)

	req := NewRequest(FadeIn)
	require.NoError(t, s.Present(req, f.host, f.modal, nil))
	f.finish(req.Duration)
	require.NoError(t, s.Dismiss(nil))
	require.ErrorIs(t, s.Dismiss(nil), ErrNotPresented, "second dismiss while the first runs")

	f.animator.Advance(epoch.Add(time.Second))
	f.animator.Advance(epoch.Add(time.Second + req.Duration))
	require.ErrorIs(t, s.Dismiss(nil), ErrNotPresented, "second dismiss after the first finished")
}

func TestSessionRejectsPresentWhileBusy(t *testing.T) {
	f := newFixture(NewRect(0, 0, 80, 24))
	s := NewSession(f.driver, f.container)
	req := NewRequest(SlideIn)

	require.NoError(t, s.Present(req, f.host, f.modal, nil))
	other := NewSurface("other", nil)
	require.ErrorIs(t, s.Present(req, f.host, other, nil), ErrBusy)
	require.Nil(t, other.Superview())

	f.finish(req.Duration)
	require.ErrorIs(t, s.Present(req, f.host, other, nil), ErrBusy)
}

func TestSessionFailedPresentReturnsToIdle(t *testing.T) {
	f := newFixture(NewRect(0, 0, 80, 24))
	s := NewSession(f.driver, f.container)

	var got []bool
	err := s.Present(Request{Style: FadeIn}, f.host, f.modal, func(ok bool) { got = append(got, ok) })
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.Equal(t, []bool{false}, got)
	require.Equal(t, Idle, s.Phase())

	err = s.Present(NewRequest(FadeIn), f.host, nil, func(ok bool) { got = append(got, ok) })
	require.ErrorIs(t, err, ErrMissingSurface)
	require.Equal(t, []bool{false, false}, got)
	require.Equal(t, Idle, s.Phase())
}

func TestSessionInterruptedPresentDetaches(t *testing.T) {
	f := newFixture(NewRect(0, 0, 80, 24))
	s := NewSession(f.driver, f.container)

	require.NoError(t, s.Present(NewRequest(FadeIn), f.host, f.modal, nil))
	require.True(t, f.container.Contains(f.modal))
	f.animator.Flush()
	require.Equal(t, Idle, s.Phase())
	require.False(t, f.container.Contains(f.modal))
}
