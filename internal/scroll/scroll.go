// Package scroll moves the viewport to in-page anchors without hiding them
// under the fixed header.
package scroll

// HeaderOffset is the height, in CSS pixels, kept clear above a target.
const HeaderOffset = 100

// Behavior is the scroll animation mode.
type Behavior string

const (
	Smooth  Behavior = "smooth"
	Instant Behavior = "instant"
)

// Document is the subset of the browser document the scroller needs.
type Document interface {
	// ElementTop returns the top of the element with the given id relative
	// to the viewport, and false when no such element exists.
	ElementTop(id string) (float64, bool)
	ScrollY() float64
	ScrollTo(top float64, behavior Behavior)
}

// Target returns the absolute scroll position that leaves HeaderOffset
// pixels above an element at viewport position top.
func Target(top, scrollY float64) float64 {
	return top + scrollY - HeaderOffset
}

// Scroller scrolls a Document.
type Scroller struct {
	doc Document
}

// New returns a Scroller for doc.
func New(doc Document) *Scroller {
	return &Scroller{doc: doc}
}

// ScrollToElement smoothly scrolls to the element with the given id. Unknown
// ids are ignored.
func (s *Scroller) ScrollToElement(id string) {
	top, ok := s.doc.ElementTop(id)
	if !ok {
		return
	}
	s.doc.ScrollTo(Target(top, s.doc.ScrollY()), Smooth)
}
