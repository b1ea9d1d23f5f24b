// Package illustration renders the four hand-and-tool line drawings that sit
// on the hero slashes.
//
// Drawings are selected by an explicit enumeration. Integer indexes coming
// from content are converted at the boundary with FromIndex, which rejects
// anything outside the known set.
package illustration

import (
	"errors"
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Illustration identifies one of the fixed drawings.
type Illustration int

const (
	Pen Illustration = iota
	Cup
	Hammer
	Coin
)

// ErrUnknown is returned for indexes outside the known drawings.
var ErrUnknown = errors.New("unknown illustration")

// Paths is the SVG path data for one drawing.
type Paths struct {
	Tool string
	Hand string
}

var drawings = map[Illustration]Paths{
	Pen: {
		Tool: "M15,40 L35,40 C40,50 45,100 35,140 M15,40 C25,60 30,100 20,140",
		Hand: "M32,80 C35,85 38,90 36,100 M25,75 C22,80 20,90 25,100 M40,85 C42,90 42,95 38,105",
	},
	Cup: {
		Tool: "M15,50 L25,40 L45,40 L35,50 M15,50 C15,90 15,120 25,150 M35,50 C35,90 35,120 25,150",
		Hand: "M20,70 C15,80 12,90 18,100 M32,75 C35,85 38,95 34,105",
	},
	Hammer: {
		Tool: "M20,40 L40,40 L45,50 L15,50 L20,40 M30,50 L30,120 C30,130 25,140 20,150",
		Hand: "M20,80 C15,85 12,95 18,105 M40,85 C45,90 47,100 40,110",
	},
	Coin: {
		Tool: "M30,60 m-15,0 a15,15 0 1,0 30,0 a15,15 0 1,0 -30,0 M30,60 m-8,0 a8,8 0 1,0 16,0 a8,8 0 1,0 -16,0 M33,53 L37,49",
		Hand: "M15,90 C10,100 10,110 15,120 M45,90 C50,100 50,110 45,120 M30,130 C25,140 25,150 30,160",
	},
}

var names = map[Illustration]string{
	Pen:    "pen",
	Cup:    "cup",
	Hammer: "hammer",
	Coin:   "coin",
}

// All returns every drawing in index order.
func All() []Illustration {
	return []Illustration{Pen, Cup, Hammer, Coin}
}

// FromIndex converts a zero-based content index into a drawing.
func FromIndex(index int) (Illustration, error) {
	ill := Illustration(index)
	if !ill.Valid() {
		return 0, fmt.Errorf("%w: index %d", ErrUnknown, index)
	}
	return ill, nil
}

// Valid reports whether i names a known drawing.
func (i Illustration) Valid() bool {
	_, ok := drawings[i]
	return ok
}

func (i Illustration) String() string {
	if name, ok := names[i]; ok {
		return name
	}
	return fmt.Sprintf("illustration(%d)", int(i))
}

// Paths returns the path data for i.
func (i Illustration) Paths() (Paths, bool) {
	p, ok := drawings[i]
	return p, ok
}

// Node renders i as an inline SVG. Unknown values render nothing.
func (i Illustration) Node() g.Node {
	p, ok := i.Paths()
	if !ok {
		return g.Group(nil)
	}
	return h.SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 60 180"),
		h.Class("w-full h-full"),
		h.Aria("hidden", "true"),
		g.Attr("data-illustration", i.String()),
		stroke(p.Tool),
		stroke(p.Hand),
	)
}

func stroke(d string) g.Node {
	return g.El("path",
		g.Attr("d", d),
		g.Attr("fill", "none"),
		g.Attr("stroke", "black"),
		g.Attr("stroke-width", "1.5"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
	)
}
