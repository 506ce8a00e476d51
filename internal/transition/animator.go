package transition

import (
	"time"
)

// Curve maps linear progress in [0,1] to eased progress in [0,1].
type Curve func(t float64) float64

// Linear is the environment default curve, applied when Animation.Curve is nil.
func Linear(t float64) float64 { return clamp01(t) }

// EaseOut decelerates towards the end (cubic).
func EaseOut(t float64) float64 {
	t = clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Tween animates one property of one surface from the value it holds when
// the animation is submitted to a fixed end value.
type Tween interface {
	begin()
	apply(progress float64)
}

type frameTween struct {
	s        *Surface
	from, to Rect
}

func (t *frameTween) begin()               { t.from = t.s.Frame }
func (t *frameTween) apply(p float64)      { t.s.Frame = t.from.Lerp(t.to, p) }
func FrameTo(s *Surface, to Rect) Tween    { return &frameTween{s: s, to: to} }
func AlphaTo(s *Surface, to float64) Tween { return &alphaTween{s: s, to: to} }
func ScaleTo(s *Surface, to float64) Tween { return &scaleTween{s: s, to: to} }

type alphaTween struct {
	s        *Surface
	from, to float64
}

func (t *alphaTween) begin()          { t.from = t.s.Alpha }
func (t *alphaTween) apply(p float64) { t.s.Alpha = lerp(t.from, t.to, p) }

type scaleTween struct {
	s        *Surface
	from, to float64
}

func (t *scaleTween) begin()          { t.from = t.s.Scale }
func (t *scaleTween) apply(p float64) { t.s.Scale = lerp(t.from, t.to, p) }

// Animation is one block of tweens sharing a duration and curve.
type Animation struct {
	Duration time.Duration
	Curve    Curve
	Tweens   []Tween
}

// Animator is the host's display-refresh scheduler. Animate returns at once
// and later calls completion exactly once, on the same goroutine that drives
// the frames. finished is false only if the animation was cut short.
type Animator interface {
	Animate(a Animation, completion func(finished bool))
}

type running struct {
	anim    Animation
	done    func(bool)
	started time.Time
}

// FrameAnimator advances animations when the host delivers a frame. It is not
// safe for concurrent use; all calls belong to the UI goroutine.
type FrameAnimator struct {
	active []*running
}

func NewFrameAnimator() *FrameAnimator { return &FrameAnimator{} }

func (f *FrameAnimator) Animate(a Animation, completion func(bool)) {
	for _, tw := range a.Tweens {
		tw.begin()
	}
	f.active = append(f.active, &running{anim: a, done: completion})
}

// Active reports whether any animation is still running.
func (f *FrameAnimator) Active() bool { return len(f.active) > 0 }

// Len is the number of running animations.
func (f *FrameAnimator) Len() int { return len(f.active) }

// Advance applies interpolated values for the frame at now. The first frame an
// animation sees is its start time. Completions run after the running set is
// updated, so a completion may submit new animations.
func (f *FrameAnimator) Advance(now time.Time) {
	if len(f.active) == 0 {
		return
	}
	var finished []*running
	keep := f.active[:0]
	for _, r := range f.active {
		if r.started.IsZero() {
			r.started = now
		}
		p := 1.0
		if r.anim.Duration > 0 {
			p = float64(now.Sub(r.started)) / float64(r.anim.Duration)
		}
		if p >= 1 {
			apply(r.anim, 1)
			finished = append(finished, r)
			continue
		}
		apply(r.anim, p)
		keep = append(keep, r)
	}
	f.active = keep
	for _, r := range finished {
		if r.done != nil {
			r.done(true)
		}
	}
}

// Flush snaps every running animation to its end values and completes it with
// finished=false. Used when the program exits mid-transition.
func (f *FrameAnimator) Flush() {
	pending := f.active
	f.active = nil
	for _, r := range pending {
		apply(r.anim, 1)
		if r.done != nil {
			r.done(false)
		}
	}
}

func apply(a Animation, linear float64) {
	curve := a.Curve
	if curve == nil {
		curve = Linear
	}
	p := linear
	if linear < 1 {
		p = curve(linear)
	}
	for _, tw := range a.Tweens {
		tw.apply(p)
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
