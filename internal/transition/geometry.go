package transition

import "math"

// Rect is a frame in container coordinates. Units are terminal cells but kept
// fractional so interpolation stays smooth; Round is applied at paint time.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Below is r moved down by its own height.
func (r Rect) Below() Rect { return r.Offset(0, r.H) }

// RightOf is r moved right by its own width.
func (r Rect) RightOf() Rect { return r.Offset(r.W, 0) }

// LeftOf is r moved left by its own width.
func (r Rect) LeftOf() Rect { return r.Offset(-r.W, 0) }

// Lerp interpolates every component; t=0 yields r and t=1 yields exactly to.
func (r Rect) Lerp(to Rect, t float64) Rect {
	if t >= 1 {
		return to
	}
	if t <= 0 {
		return r
	}
	return Rect{
		X: lerp(r.X, to.X, t),
		Y: lerp(r.Y, to.Y, t),
		W: lerp(r.W, to.W, t),
		H: lerp(r.H, to.H, t),
	}
}

// Round snaps the frame to whole cells.
func (r Rect) Round() (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.W)), int(math.Round(r.H))
}

func lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}
