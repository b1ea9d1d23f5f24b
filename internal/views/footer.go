package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/models"
)

func footer(d PageData) g.Node {
	s := d.Styles
	f := d.Site.Footer
	linkClass := "text-gray-200 hover:text-white " + s.Transition.Fast + " " + s.Body.MD

	columns := make([]g.Node, 0, len(f.Columns))
	for i, col := range f.Columns {
		var classes string
		if i == len(f.Columns)-1 && len(f.Columns) > 2 {
			classes = "col-span-2 md:col-span-1 mt-6 md:mt-0"
		}
		columns = append(columns, Div(g.If(classes != "", Class(classes)),
			H3(Class(s.Heading.XS+" mb-3 sm:mb-4"), g.Text(col.Title)),
			Ul(Class("space-y-2 sm:space-y-3"),
				g.Map(col.Links, func(l models.Link) g.Node {
					return Li(A(Href(l.Href), Class(linkClass), g.Text(l.Text)))
				}),
			),
		))
	}

	return Footer(Class("bg-gray-900 text-white py-12 sm:py-16 md:py-20"),
		Div(Class(s.Spacing.Container),
			Div(Class("flex flex-col md:flex-row justify-between"),
				Div(Class("mb-10 md:mb-0"),
					Div(Class(s.Heading.MD+" text-["+s.Colors.Primary+"] mb-4 sm:mb-6"), g.Text(d.Site.Brand)),
					P(Class("max-w-md text-gray-200 "+s.Body.MD+" leading-relaxed"), g.Text(f.Blurb)),
				),
				Div(Class("grid grid-cols-2 md:grid-cols-3 gap-6 sm:gap-8 md:gap-12"), g.Group(columns)),
			),
			Div(Class("border-t border-gray-700 mt-10 sm:mt-12 pt-8 flex flex-col md:flex-row justify-between items-center gap-4"),
				P(Class("text-gray-300 "+s.Body.SM), g.Text(f.Copyright)),
				Div(Class("flex flex-wrap justify-center gap-4 sm:gap-6"),
					g.Map(f.Legal, func(l models.Link) g.Node {
						return A(Href(l.Href), Class(linkClass), g.Text(l.Text))
					}),
				),
			),
		),
	)
}
