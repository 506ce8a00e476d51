package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/modalpick/internal/transition"
)

// minAlpha is the opacity below which a surface is not painted at all.
const minAlpha = 0.02

// Compositor paints a container's surface tree into a string, honouring each
// surface's frame, opacity, scale and backdrop.
type Compositor struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
}

// Render paints container's subviews in order onto a canvas the size of the
// container. Top-level frames are in the container's coordinate space, so the
// container origin maps to the canvas origin.
func (c Compositor) Render(container *transition.Surface) string {
	_, _, width, height := container.Frame.Round()
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := blankCanvas(width, height)
	if container.Body != nil {
		paintAt(canvas, splitToLines(fitBlock(container.Body.Render(width, height), width, height), height), 0, 0, width)
	}
	for _, child := range container.Subviews() {
		c.paint(canvas, width, child, -container.Frame.X, -container.Frame.Y, 1)
	}
	return strings.Join(canvas, "\n")
}

func (c Compositor) paint(canvas []string, width int, s *transition.Surface, ox, oy, alpha float64) {
	alpha *= s.Alpha
	if alpha < minAlpha {
		return
	}
	frame := scaled(s.Frame, s.Scale).Offset(ox, oy)
	x, y, w, h := frame.Round()
	if w <= 0 || h <= 0 {
		return
	}
	if s.Backdrop > 0 {
		c.dim(canvas, width, x, y, w, h, s.Backdrop*alpha)
	}
	if s.Body != nil {
		block := fitBlock(s.Body.Render(w, h), w, h)
		if alpha < 1 {
			block = Fade(block, alpha, c.Foreground, c.Background)
		}
		paintAt(canvas, strings.Split(block, "\n"), x, y, width)
	}
	for _, child := range s.Subviews() {
		c.paint(canvas, width, child, frame.X, frame.Y, alpha)
	}
}

// dim fades the canvas cells under a frame towards the background.
func (c Compositor) dim(canvas []string, width, x, y, w, h int, strength float64) {
	left, right := max(0, x), min(width, x+w)
	if left >= right || strength <= 0 {
		return
	}
	for row := max(0, y); row < min(len(canvas), y+h); row++ {
		line := padRightANSI(canvas[row], width)
		mid := ansi.Truncate(dropColumns(line, left), right-left, "")
		canvas[row] = ansi.Truncate(line, left, "") +
			Fade(mid, 1-clamp01(strength), c.Foreground, c.Background) +
			dropColumns(line, right)
	}
}

// scaled shrinks r around its centre.
func scaled(r transition.Rect, k float64) transition.Rect {
	if k == 1 {
		return r
	}
	k = max(0, k)
	w, h := r.W*k, r.H*k
	return transition.NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}
