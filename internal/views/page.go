package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/feed"
	"g1.vc/site/internal/models"
	"g1.vc/site/internal/shell"
	"g1.vc/site/internal/theme"
)

// PageData is everything a page render needs.
type PageData struct {
	Site      *models.Site
	Styles    theme.Styles
	State     shell.State
	Feeds     feed.Provider
	FeedDelay time.Duration
	// WithClient adds the WebAssembly client that drives in-page behavior.
	WithClient bool
}

// Page renders the full document in section order.
func Page(d PageData) g.Node {
	return Layout(d.Site.Meta, d.State, d.WithClient,
		Main(Class("min-h-screen bg-gray-50"),
			skipLink(d.Styles),
			header(d),
			hero(d),
			approach(d),
			showcase(d),
			partners(d),
			portfolio(d),
			social(d),
			contact(d),
			footer(d),
		),
	)
}

func skipLink(s theme.Styles) g.Node {
	return A(Href("#main-content"),
		Class("sr-only focus:not-sr-only focus:absolute focus:top-4 focus:left-4 focus:z-[100] focus:px-4 focus:py-2 focus:bg-white focus:text-["+
			s.Colors.Primary+"] focus:font-medium focus:rounded-md focus:shadow-md"),
		g.Text("Skip to content"),
	)
}

func sectionHeading(s theme.Styles, id, text string, centered bool) g.Node {
	classes := s.Heading.LG + " text-[" + s.Colors.Primary + "] mb-4 sm:mb-6"
	if centered {
		classes = s.Heading.LG + " text-center text-[" + s.Colors.Primary + "] mb-4 sm:mb-6"
	}
	return H2(g.If(id != "", ID(id)), Class(classes), g.Text(text))
}

func chevron(classes string) g.Node {
	return SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class(classes),
		Aria("hidden", "true"),
		g.El("path", g.Attr("d", "m9 18 6-6-6-6")),
	)
}
