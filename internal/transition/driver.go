package transition

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jask/modalpick/internal/transition"

// Scene is the surface triple one driver call works on. From is the surface
// being replaced, To the one being installed.
type Scene struct {
	Container *Surface
	From      *Surface
	To        *Surface
}

func (sc Scene) check() error {
	switch {
	case sc.Container == nil:
		return fmt.Errorf("%w: container", ErrMissingSurface)
	case sc.From == nil:
		return fmt.Errorf("%w: from", ErrMissingSurface)
	case sc.To == nil:
		return fmt.Errorf("%w: to", ErrMissingSurface)
	case sc.From == sc.To:
		return fmt.Errorf("%w: from and to are the same surface %q", ErrMissingSurface, sc.From.Name)
	}
	return nil
}

// Driver runs the per-style geometry and opacity animations on a scene. It
// holds no per-transition state; everything arrives with each call.
type Driver struct {
	animator Animator
	log      zerolog.Logger
	tracer   trace.Tracer
	runs     metric.Int64Counter
	elapsed  metric.Float64Histogram
	now      func() time.Time
}

type Option func(*Driver)

func WithLogger(l zerolog.Logger) Option { return func(d *Driver) { d.log = l } }

func WithTracer(t trace.Tracer) Option { return func(d *Driver) { d.tracer = t } }

// WithMeter records transition.runs and transition.duration on m.
func WithMeter(m metric.Meter) Option {
	return func(d *Driver) {
		if runs, err := m.Int64Counter("transition.runs",
			metric.WithDescription("Transitions run, by style, direction and outcome")); err == nil {
			d.runs = runs
		}
		if elapsed, err := m.Float64Histogram("transition.duration",
			metric.WithDescription("Wall time from start to completion"),
			metric.WithUnit("s")); err == nil {
			d.elapsed = elapsed
		}
	}
}

// WithClock replaces time.Now for duration measurements.
func WithClock(now func() time.Time) Option { return func(d *Driver) { d.now = now } }

func NewDriver(animator Animator, opts ...Option) *Driver {
	d := &Driver{
		animator: animator,
		log:      zerolog.Nop(),
		tracer:   otel.Tracer(instrumentationName),
		now:      time.Now,
	}
	// noop instruments stay in place if the global meter refuses to create one
	WithMeter(noop.Meter{})(d)
	WithMeter(otel.Meter(instrumentationName))(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Present runs the enter animation: the environment is about to show sc.To
// over sc.From.
func (d *Driver) Present(req Request, sc Scene, done func(bool)) error {
	return d.Run(req, Presenting, sc, done)
}

// Dismiss runs the exit animation: the environment is about to remove sc.From
// and reveal sc.To.
func (d *Driver) Dismiss(req Request, sc Scene, done func(bool)) error {
	return d.Run(req, Dismissing, sc, done)
}

// Run animates sc according to req and dir. done is called exactly once:
// when the animation ends, or immediately with false when the request or
// scene is unusable, in which case the error is also returned and nothing is
// animated.
func (d *Driver) Run(req Request, dir Direction, sc Scene, done func(bool)) error {
	attrs := metric.WithAttributes(
		attribute.String("style", string(req.Style)),
		attribute.String("direction", dir.String()),
	)
	_, span := d.tracer.Start(context.Background(), "transition."+dir.String(),
		trace.WithAttributes(
			attribute.String("style", string(req.Style)),
			attribute.Int64("duration_ms", req.Duration.Milliseconds()),
		))
	started := d.now()

	var once sync.Once
	complete := func(finished bool) {
		once.Do(func() {
			outcome := "finished"
			if !finished {
				outcome = "interrupted"
			}
			d.runs.Add(context.Background(), 1, attrs, metric.WithAttributes(attribute.String("outcome", outcome)))
			d.elapsed.Record(context.Background(), d.now().Sub(started).Seconds(), attrs)
			span.SetAttributes(attribute.Bool("finished", finished))
			span.End()
			d.log.Debug().Str("style", string(req.Style)).Stringer("direction", dir).
				Bool("finished", finished).Msg("transition complete")
			if done != nil {
				done(finished)
			}
		})
	}

	if err := req.Validate(); err != nil {
		d.fail(span, err, req, dir)
		complete(false)
		return err
	}
	if err := sc.check(); err != nil {
		d.fail(span, err, req, dir)
		complete(false)
		return err
	}

	d.log.Debug().Str("style", string(req.Style)).Stringer("direction", dir).
		Dur("duration", req.Duration).Msg("transition start")

	if dir == Presenting {
		sc.Container.InsertSubviewAbove(sc.To, sc.From)
	}
	d.animator.Animate(d.plan(req, dir, sc), complete)
	return nil
}

func (d *Driver) fail(span trace.Span, err error, req Request, dir Direction) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	d.log.Warn().Err(err).Str("style", string(req.Style)).Stringer("direction", dir).
		Msg("transition not started")
}

// plan sets the starting state on the surfaces and returns the animation that
// takes them to their end state.
func (d *Driver) plan(req Request, dir Direction, sc Scene) Animation {
	frame := sc.Container.Frame
	if dir == Presenting {
		return Animation{Duration: req.Duration, Curve: EaseOut, Tweens: presentTweens(req, frame, sc)}
	}
	return Animation{Duration: req.Duration, Tweens: dismissTweens(req, frame, sc)}
}

func presentTweens(req Request, frame Rect, sc Scene) []Tween {
	switch req.Style {
	case CoverVertical:
		sc.To.Alpha = 1
		sc.To.Frame = frame.Below()
		return []Tween{FrameTo(sc.To, frame)}
	case CoverHorizontal:
		sc.To.Alpha = 1
		sc.To.Frame = frame.RightOf()
		return []Tween{FrameTo(sc.To, frame)}
	case FadeIn:
		sc.To.Alpha = 0
		return []Tween{AlphaTo(sc.To, 1)}
	case FadeInWithSubviewZoom:
		sc.To.Alpha = 0
		tweens := []Tween{AlphaTo(sc.To, 1)}
		if target := sc.To.ViewWithTag(req.ZoomTag); target != nil {
			target.Scale = 0
			tweens = append(tweens, ScaleTo(target, 1))
		}
		return tweens
	case SlideIn:
		sc.From.Frame = frame
		sc.To.Frame = frame.RightOf()
		return []Tween{FrameTo(sc.From, frame.LeftOf()), FrameTo(sc.To, frame)}
	}
	panic(fmt.Sprintf("transition: unhandled style %q", string(req.Style)))
}

func dismissTweens(req Request, frame Rect, sc Scene) []Tween {
	switch req.Style {
	case CoverVertical:
		return []Tween{FrameTo(sc.From, frame.Below())}
	case CoverHorizontal:
		return []Tween{FrameTo(sc.From, frame.RightOf())}
	case FadeIn, FadeInWithSubviewZoom:
		return []Tween{AlphaTo(sc.From, 0)}
	case SlideIn:
		return []Tween{FrameTo(sc.From, frame.RightOf()), FrameTo(sc.To, frame)}
	}
	panic(fmt.Sprintf("transition: unhandled style %q", string(req.Style)))
}
