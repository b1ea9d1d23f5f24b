package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/feed"
	"g1.vc/site/internal/models"
)

func social(d PageData) g.Node {
	s := d.Styles
	sc := d.Site.Social

	columns := make([]g.Node, 0, len(sc.Feeds))
	for _, f := range sc.Feeds {
		platform, err := feed.ParsePlatform(f.Platform)
		if err != nil {
			continue
		}
		opts := []feed.Option{feed.WithDelay(d.FeedDelay)}
		if !d.WithClient {
			opts = append(opts, feed.Preloaded())
		}
		widget := feed.NewWidget(platform, d.Feeds, opts...)
		columns = append(columns, feedColumn(d, f, widget))
	}

	return Section(Class("bg-white "+s.Spacing.SectionY), Role("region"), Aria("labelledby", "social-heading"),
		Div(Class(s.Spacing.Container),
			sectionHeading(s, "social-heading", sc.Heading, true),
			P(Class(s.Body.LG+" text-gray-800 leading-relaxed text-center mb-10 md:mb-16"), g.Text(sc.Intro)),
			Div(Class("grid grid-cols-1 md:grid-cols-2 gap-8 md:gap-12"), g.Group(columns)),
		),
	)
}

func feedColumn(d PageData, f models.Feed, w *feed.Widget) g.Node {
	s := d.Styles
	return Div(
		H3(Class(s.Heading.SM+" mb-6 sm:mb-8 text-gray-900 border-b-2 border-["+s.Colors.Primary+"] pb-2 inline-block"),
			g.Text(f.Title+" "),
			Span(Class("text-["+s.Colors.Primary+"]"), g.Text(f.Accent)),
		),
		w.Node(),
		Div(Class("mt-6 sm:mt-8 text-center"),
			A(Href(f.Follow.Href), Target("_blank"), Rel("noopener noreferrer"), Aria("label", f.Follow.Label),
				Class("inline-flex items-center text-["+s.Colors.Primary+"] font-medium hover:underline "+s.Body.MD+" p-2"),
				g.Text(f.Follow.Text),
				chevron("w-4 h-4 ml-1"),
			),
		),
	)
}
