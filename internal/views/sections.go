package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/illustration"
	"g1.vc/site/internal/models"
	"g1.vc/site/internal/theme"
)

func hero(d PageData) g.Node {
	s := d.Styles
	h := d.Site.Hero

	return Section(ID("main-content"), Class("relative bg-gray-50 min-h-[80vh] sm:min-h-[90vh] flex items-center pt-20"),
		Div(Class(s.Spacing.Container+" py-8 sm:py-12 md:py-16"),
			Div(Class("flex flex-col md:flex-row items-center md:items-start justify-between"),
				Div(Class("w-full md:w-1/2 max-w-xl mx-auto md:mx-0 text-center md:text-left"),
					Div(Class("text-[60px] xs:text-[80px] sm:text-[100px] md:text-[140px] lg:text-[180px] font-bold text-["+
						s.Colors.Primary+"] leading-[0.9] mb-2"), g.Text(h.Wordmark)),
					H1(Class(s.Heading.MD+" text-["+s.Colors.Primary+"] mb-4"), g.Text(h.Headline)),
					P(Class(s.Body.LG+" mb-8 sm:mb-12 text-gray-800"), g.Text(h.Tagline)),
					Div(Class("flex flex-col sm:flex-row gap-4 sm:gap-6 justify-center md:justify-start"),
						g.Map(h.Actions, func(l models.Link) g.Node {
							return A(Href(l.Href),
								Class(s.SecondaryButton()+" font-bold px-6 sm:px-8 py-3 sm:py-4 w-full sm:w-auto text-center"),
								g.Text(l.Text),
							)
						}),
					),
				),
				Div(Class("w-full md:w-1/2 hidden md:flex justify-center md:justify-end h-[300px] md:h-[350px] mt-10 md:mt-0"),
					Div(Class("relative w-full h-full flex items-center justify-center md:justify-end overflow-x-visible"),
						Div(Class("flex space-x-8 md:space-x-16 lg:space-x-20 -mx-4 md:mx-0 scale-90 md:scale-100"),
							slashes(s, h.Slashes),
						),
					),
				),
			),
		),
	)
}

func slashes(s theme.Styles, items []models.Slash) g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		image := item.Image
		if image == "" {
			image = models.PlaceholderImage
		}
		nodes = append(nodes, Div(Class("relative"), StyleAttr(fmt.Sprintf("transform: translateX(%dpx)", i*8-40)),
			Div(Class("relative w-[60px] sm:w-[70px] h-[180px] sm:h-[200px] bg-["+s.Colors.Primary+"] transform skew-x-[-20deg] z-10"),
				Aria("hidden", "true")),
			Div(Class("absolute inset-0 w-[100px] sm:w-[120px] h-[180px] sm:h-[200px] flex items-center justify-center"),
				Div(Class("absolute inset-0 opacity-20 pointer-events-none"),
					illustration.Illustration(item.Illustration).Node(),
				),
				Img(Src(image), Alt(item.Alt), Width("100"), Height("180"), Class("object-contain z-20 transform translate-x-2")),
			),
		))
	}
	return g.Group(nodes)
}

func approach(d PageData) g.Node {
	s := d.Styles
	a := d.Site.Approach

	return Section(ID("approach"), Class("bg-gray-50 "+s.Spacing.SectionY), Role("region"), Aria("labelledby", "approach-heading"),
		Div(Class(s.Spacing.Container),
			Div(Class("max-w-4xl mx-auto text-center mb-12 md:mb-16"),
				sectionHeading(s, "approach-heading", a.Heading, false),
				P(Class(s.Body.LG+" text-gray-800 leading-relaxed"), g.Text(a.Intro)),
			),
			Div(Class("grid grid-cols-1 sm:grid-cols-2 gap-6 sm:gap-8 max-w-6xl mx-auto"),
				g.Map(a.Steps, func(step models.Step) g.Node {
					return Div(Class("bg-white p-6 md:p-8 rounded-lg shadow-md hover:shadow-lg "+s.Transition.Default+" transform hover:-translate-y-1 duration-300"),
						Div(Class("text-4xl text-["+s.Colors.Primary+"] mb-4 font-bold"), g.Text(step.Number+" _")),
						H3(Class(s.Heading.XS+" mb-3 text-gray-900 leading-tight"), g.Text(step.Heading)),
						P(Class(s.Body.MD+" text-gray-800 leading-relaxed"), g.Text(step.Text)),
					)
				}),
			),
		),
	)
}

func showcase(d PageData) g.Node {
	s := d.Styles
	sc := d.Site.Showcase
	focus := "focus:outline-none focus:ring-2 focus:ring-[" + s.Colors.Primary + "] focus:ring-offset-2 rounded-sm"

	lines := make([]g.Node, 0, len(sc.Lines))
	for i, line := range sc.Lines {
		classes := "block text-gray-900 mb-2"
		switch {
		case i == 1:
			classes = "block text-[" + s.Colors.Primary + "] mb-2"
		case i == len(sc.Lines)-1:
			classes = "block text-gray-900"
		}
		lines = append(lines, Span(Class(classes), g.Text(line)))
	}

	return Section(Class("bg-gray-50 "+s.Spacing.SectionY), Role("region"), Aria("labelledby", "partners-showcase-heading"),
		Div(Class(s.Spacing.Container),
			Div(Class("flex flex-col md:flex-row items-start justify-between gap-8 md:gap-12"),
				Div(Class("w-full md:w-1/2 md:sticky md:top-32"),
					H2(ID("partners-showcase-heading"), Class(s.Heading.MD+" leading-tight mb-8"), g.Group(lines)),
				),
				Div(Class("w-full md:w-1/2"),
					Div(Class("space-y-8 md:space-y-12"),
						g.Map(sc.Anchors, func(a models.PartnerAnchor) g.Node {
							if a.Lead {
								return Button(Type("button"), Data("scroll-target", a.Target), Aria("label", a.Label),
									Class("block group w-full min-h-[44px] "+focus),
									Div(Class("text-[60px] sm:text-[80px] md:text-[100px] lg:text-[120px] font-bold text-["+s.Colors.Primary+"] leading-none"),
										g.Text(a.Name)),
								)
							}
							return Button(Type("button"), Data("scroll-target", a.Target), Aria("label", a.Label),
								Class("block group w-full text-left min-h-[44px] "+focus),
								Div(Class("text-[40px] sm:text-[50px] md:text-[70px] lg:text-[100px] font-bold leading-none text-gray-900"),
									g.Text(a.Name)),
								Div(Class("h-1 bg-["+s.Colors.Primary+"] w-full transform origin-left "+s.Transition.Default+" group-hover:scale-x-110")),
							)
						}),
					),
				),
			),
		),
	)
}

func portfolio(d PageData) g.Node {
	s := d.Styles
	p := d.Site.Portfolio

	items := make([]g.Node, 0, len(p.Items))
	for i, item := range p.Items {
		items = append(items, Div(
			Class("border-2 border-["+s.Colors.Primary+"] p-4 sm:p-6 text-center text-["+s.Colors.Primary+"] rounded-lg hover:bg-["+
				s.Colors.Primary+"] hover:text-white "+s.Transition.Default+
				" group cursor-pointer shadow-sm hover:shadow-md bg-white focus-within:ring-2 focus-within:ring-offset-2 focus-within:ring-["+s.Colors.Primary+"]"),
			TabIndex("0"),
			Role("button"),
			Data("portfolio-item", item.ID),
			Aria("label", "View portfolio item "+item.Name+" details"),
			Div(Class("mb-2 sm:mb-4 text-lg sm:text-xl font-medium"), g.Textf("_%02d", i+1)),
			Div(Class(s.Heading.XS+" mb-2 sm:mb-3"), g.Text(item.Name)),
			Div(Class(s.Body.MD+" mb-1 sm:mb-2 opacity-80 group-hover:opacity-100"), g.Textf("%d", item.Year)),
			Div(Class(s.Body.MD+" font-medium"), g.Text(item.Stage)),
		))
	}

	return Section(ID("portfolio"), Class("bg-gray-50 "+s.Spacing.SectionY), Role("region"), Aria("labelledby", "portfolio-heading"),
		Div(Class(s.Spacing.Container),
			sectionHeading(s, "portfolio-heading", p.Heading, true),
			P(Class(s.Body.LG+" text-gray-800 leading-relaxed text-center mb-10 md:mb-16"), g.Text(p.Intro)),
			Div(Class("grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 gap-4 sm:gap-6"), g.Group(items)),
			Div(Class("text-center mt-8 sm:mt-12"),
				A(Href(p.ViewAll.Href), Class(s.SecondaryButton()+" font-bold px-6 sm:px-8 py-3 sm:py-4 inline-block"), g.Text(p.ViewAll.Text)),
			),
		),
	)
}

func contact(d PageData) g.Node {
	s := d.Styles
	c := d.Site.Contact

	actions := make([]g.Node, 0, len(c.Actions))
	for i, l := range c.Actions {
		classes := "px-6 sm:px-8 py-3 sm:py-4 bg-white text-[" + s.Colors.Primary + "] " + s.Body.LG +
			" font-bold rounded-md hover:bg-gray-100 " + s.Transition.Default + " shadow-md hover:shadow-lg transform hover:scale-105 duration-300"
		if i > 0 {
			classes = "px-6 sm:px-8 py-3 sm:py-4 border-2 border-white text-white " + s.Body.LG +
				" font-bold rounded-md hover:bg-white hover:text-[" + s.Colors.Primary + "] " + s.Transition.Default +
				" shadow-md hover:shadow-lg transform hover:scale-105 duration-300"
		}
		actions = append(actions, A(Href(l.Href), Class(classes), g.Text(l.Text)))
	}

	return Section(ID("contact"), Class("bg-["+s.Colors.Primary+"] text-white "+s.Spacing.SectionY),
		Div(Class(s.Spacing.Container+" text-center"),
			H2(Class(s.Heading.LG+" mb-4 sm:mb-6"), g.Text(c.Heading)),
			P(Class(s.Body.LG+" mb-8 sm:mb-12 max-w-3xl mx-auto leading-relaxed"), g.Text(c.Text)),
			Div(Class("flex flex-col sm:flex-row justify-center gap-4 sm:gap-6"), g.Group(actions)),
		),
	)
}
