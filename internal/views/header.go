package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/models"
)

func header(d PageData) g.Node {
	s := d.Styles
	st := d.State
	focus := s.FocusRing()

	return Header(Class("fixed top-0 left-0 right-0 bg-white shadow-sm z-50"), Role("banner"),
		Div(Class(s.Spacing.Container+" py-3 sm:py-4 flex justify-between items-center"),
			Div(Class(s.Heading.MD+" text-["+s.Colors.Primary+"]"), g.Text(d.Site.Brand)),

			Button(
				Type("button"),
				Data("menu-toggle", ""),
				Class("md:hidden flex items-center justify-center p-2 rounded-md bg-gray-50 hover:bg-gray-100 "+s.Transition.Fast+
					" min-h-[44px] min-w-[44px] "+focus),
				Aria("label", st.MenuLabel()),
				Aria("expanded", strconv.FormatBool(st.MenuOpen)),
				Aria("controls", "mobile-menu"),
				SVG(
					g.Attr("xmlns", "http://www.w3.org/2000/svg"),
					Class("h-6 w-6 text-gray-800"),
					g.Attr("fill", "none"),
					g.Attr("viewBox", "0 0 24 24"),
					g.Attr("stroke", "currentColor"),
					g.El("path",
						Data("menu-icon", ""),
						g.Attr("stroke-linecap", "round"),
						g.Attr("stroke-linejoin", "round"),
						g.Attr("stroke-width", "2"),
						g.Attr("d", st.MenuIconPath()),
					),
				),
			),

			Nav(Class("hidden md:flex space-x-8 lg:space-x-12"), Role("navigation"), Aria("label", "Main Navigation"),
				g.Map(d.Site.Nav, func(l models.Link) g.Node {
					return A(Href(l.Href),
						Class(s.Body.MD+" font-medium text-gray-800 hover:text-["+s.Colors.Primary+"] "+s.Transition.Default+
							" relative group "+focus+" rounded-sm p-2"),
						g.Text(l.Text),
						Span(Data("nav-underline", ""), Class(st.UnderlineClasses())),
					)
				}),
			),

			A(Href(d.Site.CTA.Href), Class("hidden md:inline-block "+s.PrimaryButton()+" "+focus), g.Text(d.Site.CTA.Text)),
		),

		Div(ID("mobile-menu"), Role("menu"), Class(st.MenuClasses()),
			Div(Class(s.Spacing.Container),
				Nav(Class("flex flex-col space-y-4"), Role("navigation"), Aria("label", "Mobile Navigation"),
					g.Map(d.Site.Nav, func(l models.Link) g.Node {
						return A(Href(l.Href), Role("menuitem"), Data("menu-close", ""),
							Class(s.Body.LG+" font-medium text-gray-800 hover:text-["+s.Colors.Primary+"] "+s.Transition.Default+
								" py-2 px-3 rounded-md focus:outline-none focus:ring-2 focus:ring-["+s.Colors.Primary+"] min-h-[44px] flex items-center"),
							g.Text(l.Text),
						)
					}),
					A(Href(d.Site.CTA.Href), Role("menuitem"), Data("menu-close", ""),
						Class(s.PrimaryButton()+" mt-2 inline-block "+focus),
						g.Text(d.Site.CTA.Text),
					),
				),
			),
		),
	)
}
