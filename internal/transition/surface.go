package transition

import "slices"

// Renderer paints a surface body into a width x height block of text.
type Renderer interface {
	Render(width, height int) string
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(width, height int) string

func (f RenderFunc) Render(width, height int) string { return f(width, height) }

// Surface is a rectangular, opacity-capable region. The driver only touches
// Frame, Alpha and Scale; everything else belongs to the owner.
type Surface struct {
	Name  string
	Frame Rect
	// Alpha is 0 (invisible) to 1 (opaque).
	Alpha float64
	// Scale is applied around the frame centre; 1 is identity.
	Scale float64
	// Tag identifies a subview for lookups. Zero means untagged.
	Tag int
	// Backdrop dims whatever lies beneath the frame, 0 (none) to 1 (hidden),
	// scaled by Alpha.
	Backdrop float64
	Body     Renderer

	superview *Surface
	subviews  []*Surface
}

// NewSurface returns an opaque, unscaled, detached surface.
func NewSurface(name string, body Renderer) *Surface {
	return &Surface{Name: name, Alpha: 1, Scale: 1, Body: body}
}

func (s *Surface) Superview() *Surface { return s.superview }

// Subviews returns the children in paint order (last is topmost).
func (s *Surface) Subviews() []*Surface { return slices.Clone(s.subviews) }

// AddSubview attaches child on top, detaching it from any previous parent.
func (s *Surface) AddSubview(child *Surface) {
	if child == nil || child == s {
		return
	}
	child.RemoveFromSuperview()
	child.superview = s
	s.subviews = append(s.subviews, child)
}

// InsertSubviewAbove attaches child directly above sibling in paint order.
// When sibling is not a child of s, child goes on top.
func (s *Surface) InsertSubviewAbove(child, sibling *Surface) {
	if child == nil || child == s {
		return
	}
	child.RemoveFromSuperview()
	idx := slices.Index(s.subviews, sibling)
	if idx < 0 {
		s.subviews = append(s.subviews, child)
	} else {
		s.subviews = slices.Insert(s.subviews, idx+1, child)
	}
	child.superview = s
}

func (s *Surface) RemoveFromSuperview() {
	parent := s.superview
	if parent == nil {
		return
	}
	if idx := slices.Index(parent.subviews, s); idx >= 0 {
		parent.subviews = slices.Delete(parent.subviews, idx, idx+1)
	}
	s.superview = nil
}

// Contains reports whether child is a direct subview of s.
func (s *Surface) Contains(child *Surface) bool {
	return child != nil && child.superview == s
}

// ViewWithTag searches the descendants of s depth-first. The receiver itself
// never matches, and tag 0 never matches.
func (s *Surface) ViewWithTag(tag int) *Surface {
	if tag == 0 {
		return nil
	}
	for _, child := range s.subviews {
		if child.Tag == tag {
			return child
		}
		if found := child.ViewWithTag(tag); found != nil {
			return found
		}
	}
	return nil
}
