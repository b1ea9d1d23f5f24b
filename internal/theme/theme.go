// Package theme holds the shared style tokens used by every rendered section.
//
// Styles is a plain value built once at startup and handed to the views by
// value, so no view can mutate what another one sees.
package theme

// Colors holds the palette.
type Colors struct {
	Primary      string
	PrimaryHover string
	TextDark     string
	TextMedium   string
	TextLight    string
	BgLight      string
	BgWhite      string
}

// Spacing holds layout spacing classes.
type Spacing struct {
	SectionY  string
	SectionX  string
	Container string
}

// Headings is the heading type scale, largest first.
type Headings struct {
	XL string
	LG string
	MD string
	SM string
	XS string
}

// Body is the body copy type scale.
type Body struct {
	LG string
	MD string
	SM string
}

// Transitions holds transition utility classes.
type Transitions struct {
	Default string
	Fast    string
	Slow    string
}

// Styles is the complete token set.
type Styles struct {
	Colors     Colors
	Spacing    Spacing
	Heading    Headings
	Body       Body
	Transition Transitions
}

// Default returns the site's style tokens.
func Default() Styles {
	return Styles{
		Colors: Colors{
			Primary:      "#f03a37",
			PrimaryHover: "#d03330",
			TextDark:     "#1f2937",
			TextMedium:   "#4b5563",
			TextLight:    "#9ca3af",
			BgLight:      "#f9fafb",
			BgWhite:      "#ffffff",
		},
		Spacing: Spacing{
			SectionY:  "py-16 sm:py-20 md:py-24 lg:py-32",
			SectionX:  "px-4 sm:px-6 md:px-8",
			Container: "container mx-auto px-4 sm:px-6 md:px-8",
		},
		Heading: Headings{
			XL: "text-4xl sm:text-5xl md:text-6xl lg:text-7xl font-bold",
			LG: "text-3xl sm:text-4xl md:text-5xl lg:text-6xl font-bold",
			MD: "text-2xl sm:text-3xl md:text-4xl font-bold",
			SM: "text-xl sm:text-2xl md:text-3xl font-bold",
			XS: "text-lg sm:text-xl md:text-2xl font-bold",
		},
		Body: Body{
			LG: "text-lg sm:text-xl md:text-2xl",
			MD: "text-base sm:text-lg md:text-xl",
			SM: "text-sm sm:text-base md:text-lg",
		},
		Transition: Transitions{
			Default: "transition-all duration-300 ease-in-out",
			Fast:    "transition-all duration-200 ease-in-out",
			Slow:    "transition-all duration-500 ease-in-out",
		},
	}
}

// PrimaryButton returns the filled call-to-action button classes.
func (s Styles) PrimaryButton() string {
	return "px-6 py-3 bg-[" + s.Colors.Primary + "] text-white font-medium rounded-md hover:bg-[" +
		s.Colors.PrimaryHover + "] " + s.Transition.Default +
		" transform hover:scale-105 duration-300 text-base min-h-[44px] motion-safe:hover:scale-105 motion-reduce:hover:scale-100"
}

// SecondaryButton returns the outlined button classes.
func (s Styles) SecondaryButton() string {
	return "px-6 py-3 border-2 border-[" + s.Colors.Primary + "] text-[" + s.Colors.Primary +
		"] font-medium rounded-md hover:bg-[" + s.Colors.Primary + "] hover:text-white " +
		s.Transition.Default + " text-base min-h-[44px]"
}

// FocusRing returns the keyboard focus ring classes in the primary color.
func (s Styles) FocusRing() string {
	return "focus:outline-none focus:ring-2 focus:ring-[" + s.Colors.Primary + "] focus:ring-offset-2"
}
