package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/models"
	"g1.vc/site/internal/reveal"
	"g1.vc/site/internal/theme"
)

func partners(d PageData) g.Node {
	s := d.Styles
	p := d.Site.Partners

	return Section(ID("partners"), Class("bg-gray-50 "+s.Spacing.SectionY),
		Div(Class(s.Spacing.Container),
			Div(Class("max-w-4xl mx-auto text-center mb-12 md:mb-16"),
				sectionHeading(s, "", p.Heading, false),
				P(Class(s.Body.LG+" text-gray-800 leading-relaxed"), g.Text(p.Intro)),
			),
			g.Map(p.Categories, func(c models.Category) g.Node {
				return category(s, c, d.State.ReducedMotion, d.WithClient)
			}),
		),
	)
}

// category renders one partner block. With the client it starts hidden unless
// motion is reduced and the client reveals it on first intersection. Without
// the client nothing could observe it, so it renders visible.
func category(s theme.Styles, c models.Category, reduced, withClient bool) g.Node {
	base := "mb-16 sm:mb-24 md:mb-32 bg-white rounded-xl shadow-md overflow-hidden " + s.Transition.Default
	titleID := c.ID + "-title"

	return Div(ID(c.ID),
		Class(base+" "+reveal.Classes(!withClient, reduced)),
		g.If(withClient, g.Group{Data("reveal", ""), Data("reveal-base", base)}),
		Role("region"),
		Aria("labelledby", titleID),
		Div(Class("p-6 sm:p-8 md:p-12 border-b border-gray-100"),
			H2(ID(titleID), Class(s.Heading.LG+" text-["+s.Colors.Primary+"] mb-0"), g.Text(c.Title)),
		),
		Div(Class("p-6 sm:p-8 md:p-12 flex flex-col md:flex-row gap-8 md:gap-12"),
			Div(Class("w-full md:w-1/3"),
				Div(Class("bg-gray-100 w-full aspect-square rounded-lg overflow-hidden flex items-center justify-center shadow-inner"),
					Img(Src(c.ImagePath()), Alt(c.Title+" illustration for "+c.CompanyName), Width("400"), Height("400"), Class("w-full h-auto")),
				),
			),
			Div(Class("w-full md:w-2/3"),
				H3(Class(s.Heading.MD+" mb-2 sm:mb-4 text-gray-900"), g.Text(c.CompanyName)),
				H4(Class(s.Heading.SM+" "+c.TaglineColor+" mb-6 sm:mb-8 font-medium"), g.Text(c.Tagline)),
				Ul(Class("space-y-3 sm:space-y-4"), Aria("label", "Benefits of "+c.Title),
					g.Map(c.Bullets, func(point string) g.Node {
						return Li(Class("pl-6 sm:pl-8 relative "+s.Body.MD+" text-gray-900 group"),
							Span(Class("absolute left-0 font-bold text-["+s.Colors.Primary+"] group-hover:text-["+s.Colors.PrimaryHover+"] transition-colors"),
								Aria("hidden", "true"), g.Text("_")),
							g.Text(point),
						)
					}),
				),
				Div(Class("mt-8 sm:mt-10"),
					A(Href("#"), Aria("label", "Learn more about "+c.Title),
						Class("inline-flex items-center text-["+s.Colors.Primary+"] "+s.Body.LG+
							" font-medium hover:underline group p-2 focus:outline-none focus:ring-2 focus:ring-["+s.Colors.Primary+"] rounded-sm"),
						g.Text("Learn more "),
						chevron(learnMoreChevron(reduced)),
					),
				),
			),
		),
	)
}

func learnMoreChevron(reduced bool) string {
	if reduced {
		return "ml-2 h-4 w-4 sm:h-5 sm:w-5"
	}
	return "ml-2 h-4 w-4 sm:h-5 sm:w-5 transform group-hover:translate-x-1 transition-transform"
}
