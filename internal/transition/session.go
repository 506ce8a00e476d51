package transition

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned by Present while another modal is on screen or a
	// transition is running.
	ErrBusy = errors.New("transition: session busy")
	// ErrNotPresented is returned by Dismiss when nothing is presented,
	// including a second Dismiss in a row.
	ErrNotPresented = errors.New("transition: nothing presented")
)

// Phase is the presentation lifecycle state.
type Phase int

const (
	Idle Phase = iota
	PhasePresenting
	Presented
	PhaseDismissing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case PhasePresenting:
		return "presenting"
	case Presented:
		return "presented"
	case PhaseDismissing:
		return "dismissing"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Session owns one container and presents at most one modal surface over a
// presenter at a time. It calls the driver entry point matching the lifecycle
// event, so direction never travels through shared state.
type Session struct {
	driver    *Driver
	container *Surface

	phase     Phase
	req       Request
	presenter *Surface
	presented *Surface
}

func NewSession(driver *Driver, container *Surface) *Session {
	return &Session{driver: driver, container: container}
}

func (s *Session) Phase() Phase { return s.phase }

// Presented returns the modal surface while one is on screen.
func (s *Session) Presented() *Surface { return s.presented }

// Request returns the request of the current presentation.
func (s *Session) Request() Request { return s.req }

// Present shows presented over presenter. done receives the driver's
// completion. The presenter stays attached under the modal.
func (s *Session) Present(req Request, presenter, presented *Surface, done func(bool)) error {
	if s.phase != Idle {
		return fmt.Errorf("%w: %s", ErrBusy, s.phase)
	}
	s.phase = PhasePresenting
	s.req = req
	s.presenter, s.presented = presenter, presented
	return s.driver.Present(req, Scene{Container: s.container, From: presenter, To: presented}, func(finished bool) {
		if finished {
			s.phase = Presented
		} else {
			if presented != nil {
				presented.RemoveFromSuperview()
			}
			s.reset()
		}
		if done != nil {
			done(finished)
		}
	})
}

// Dismiss removes the presented surface with the exit animation of the style
// it was presented with. The surface is detached once the animation ends.
func (s *Session) Dismiss(done func(bool)) error {
	if s.phase != Presented {
		return fmt.Errorf("%w: %s", ErrNotPresented, s.phase)
	}
	s.phase = PhaseDismissing
	presented := s.presented
	return s.driver.Dismiss(s.req, Scene{Container: s.container, From: presented, To: s.presenter}, func(finished bool) {
		if presented != nil {
			presented.RemoveFromSuperview()
		}
		s.reset()
		if done != nil {
			done(finished)
		}
	})
}

func (s *Session) reset() {
	s.phase = Idle
	s.req = Request{}
	s.presenter, s.presented = nil, nil
}
