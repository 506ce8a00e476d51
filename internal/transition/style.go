package transition

import (
	"fmt"
	"strings"
)

// Style names one of the hand-built modal transitions. The set is closed:
// every switch over Style must list all five values (enforced by the
// exhaustive linter, see .golangci.yml).
type Style string

const (
	CoverVertical         Style = "cover-vertical"
	CoverHorizontal       Style = "cover-horizontal"
	FadeIn                Style = "fade-in"
	FadeInWithSubviewZoom Style = "fade-in-zoom"
	SlideIn               Style = "slide-in"
)

// Styles returns every style in declaration order.
func Styles() []Style {
	return []Style{CoverVertical, CoverHorizontal, FadeIn, FadeInWithSubviewZoom, SlideIn}
}

func (s Style) Valid() bool {
	switch s {
	case CoverVertical, CoverHorizontal, FadeIn, FadeInWithSubviewZoom, SlideIn:
		return true
	}
	return false
}

func (s Style) String() string { return string(s) }

// Label is the human-readable name shown in the form footer.
func (s Style) Label() string {
	switch s {
	case CoverVertical:
		return "Cover vertical"
	case CoverHorizontal:
		return "Cover horizontal"
	case FadeIn:
		return "Fade in"
	case FadeInWithSubviewZoom:
		return "Fade in + zoom"
	case SlideIn:
		return "Slide in"
	}
	return string(s)
}

// ParseStyle accepts the canonical names plus a few loose spellings
// ("coverVertical", "cover_vertical", "fade").
func ParseStyle(raw string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	switch key {
	case "cover-vertical", "coververtical":
		return CoverVertical, nil
	case "cover-horizontal", "coverhorizontal":
		return CoverHorizontal, nil
	case "fade-in", "fadein", "fade":
		return FadeIn, nil
	case "fade-in-zoom", "fadeinzoom", "fade-in-with-subview-zoom", "fadeinwithsubviewzoomin", "zoom":
		return FadeInWithSubviewZoom, nil
	case "slide-in", "slidein", "slide":
		return SlideIn, nil
	}
	return "", fmt.Errorf("%w: unknown style %q", ErrInvalidRequest, raw)
}

// Next cycles through Styles, wrapping at the end.
func (s Style) Next() Style {
	all := Styles()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Direction is the way a transition runs. It is fixed by the entry point that
// started the transition, never by the caller.
type Direction int

const (
	Presenting Direction = iota
	Dismissing
)

func (d Direction) String() string {
	switch d {
	case Presenting:
		return "presenting"
	case Dismissing:
		return "dismissing"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
