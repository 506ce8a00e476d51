package transition

import (
	"errors"
	"fmt"
	"time"
)

// DefaultDuration is used when a request leaves Duration unset.
const DefaultDuration = 250 * time.Millisecond

var (
	// ErrInvalidRequest covers non-positive durations and unknown styles.
	ErrInvalidRequest = errors.New("transition: invalid request")
	// ErrMissingSurface is returned when the container, from or to surface is
	// absent (or from and to are the same surface). Completion is still
	// signalled, with false.
	ErrMissingSurface = errors.New("transition: missing surface")
)

// Request configures exactly one driver invocation.
type Request struct {
	Style    Style
	Duration time.Duration
	// ZoomTag names the subview of the presented surface that zooms in under
	// FadeInWithSubviewZoom. Zero means no subview. Ignored by other styles.
	ZoomTag int
}

// NewRequest returns a request for style with the default duration.
func NewRequest(style Style) Request {
	return Request{Style: style, Duration: DefaultDuration}
}

func (r Request) WithDuration(d time.Duration) Request {
	r.Duration = d
	return r
}

func (r Request) WithZoomTag(tag int) Request {
	r.ZoomTag = tag
	return r
}

func (r Request) Validate() error {
	if !r.Style.Valid() {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidRequest, string(r.Style))
	}
	if r.Duration <= 0 {
		return fmt.Errorf("%w: duration %s must be positive", ErrInvalidRequest, r.Duration)
	}
	return nil
}
