package feed

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Provider renders the body of a feed widget for a given state.
type Provider interface {
	// Deferred reports whether the widget should schedule the
	// Initial → Loaded transition at all.
	Deferred() bool
	Render(p Platform, s State) g.Node
}

// Preview renders a static description of each embed. It is used outside
// production so local work never reaches third-party widgets.
type Preview struct{}

// Live renders the real third-party embeds behind a loading indicator.
type Live struct{}

var (
	_ Provider = Preview{}
	_ Provider = Live{}
)

// Deferred is false: the preview card is permanent.
func (Preview) Deferred() bool { return false }

// Render ignores s.
func (Preview) Render(p Platform, _ State) g.Node {
	var title, accent, detail, handle, sample string
	switch p {
	case Twitter:
		title = "Twitter Feed Preview"
		accent = "text-[#f03a37]"
		detail = "Using official Twitter embed API"
		handle = "@G1_Ventures"
		sample = "Sample tweet content from G1 Ventures will appear here in production."
	default:
		title = "LinkedIn Company Page Preview"
		accent = "text-[#0077b5]"
		detail = "Embed URL: " + linkedInEmbedURL
		handle = "Investment Management • Blockchain"
		sample = "G1 Ventures company updates will appear here in production."
	}

	return h.Div(h.Class("h-[400px] flex flex-col items-center justify-center p-6 text-center"), h.Aria("live", "polite"),
		h.Div(h.Class("mb-4 "+accent+" font-bold text-xl"), g.Text(title)),
		h.P(h.Class("text-gray-700 mb-3"), g.Textf("This %s embed will appear in production.", p.Label())),
		h.P(h.Class("text-gray-500 text-sm"), g.Text(detail)),
		h.Div(h.Class("mt-6 p-4 border border-gray-200 rounded-lg w-full max-w-md"),
			h.Div(h.Class("flex items-center mb-3"),
				h.Div(h.Class("w-10 h-10 rounded-full bg-gray-200 mr-3")),
				h.Div(
					h.Div(h.Class("font-bold"), g.Text("G1 Ventures")),
					h.Div(h.Class("text-gray-500 text-sm"), g.Text(handle)),
				),
			),
			h.Div(h.Class("h-px bg-gray-200 my-3")),
			h.P(h.Class("text-gray-700"), g.Text(sample)),
		),
	)
}

// Deferred is true: the embed replaces the loading indicator after a delay.
func (Live) Deferred() bool { return true }

// Render returns the loading indicator before the transition and the embed
// after it.
func (Live) Render(p Platform, s State) g.Node {
	if s != StateLoaded {
		return loading(p)
	}
	if p == Twitter {
		return h.Div(h.Class("twitter-embed-container relative"), h.StyleAttr("height: 500px"), h.Aria("label", "Twitter Timeline"),
			h.Div(h.StyleAttr("width: 100%; height: 100%; overflow: auto; border-radius: 12px"),
				h.A(
					h.Class("twitter-timeline"),
					h.Data("height", "500"),
					h.Data("theme", "light"),
					h.Href(p.EmbedURL()),
					g.Text("Tweets by G1_Ventures"),
				),
			),
		)
	}
	return h.Div(h.Class("linkedin-embed-container"), h.StyleAttr("height: 500px; overflow: auto"), h.Aria("label", "LinkedIn Company Page"),
		g.El("iframe",
			h.Src(p.EmbedURL()),
			h.StyleAttr("width: 100%; height: 100%; border: 0; border-radius: 12px"),
			h.TitleAttr("G1 Ventures LinkedIn Company Page"),
			h.Aria("label", "G1 Ventures LinkedIn Company Page"),
			g.Attr("frameborder", "0"),
			g.Attr("allowfullscreen"),
		),
	)
}

func loading(p Platform) g.Node {
	text := "Loading LinkedIn content..."
	if p == Twitter {
		text = "Loading Twitter feed..."
	}
	return h.Div(h.Class("h-[400px] flex items-center justify-center"), h.Aria("live", "polite"),
		h.Div(h.Class("animate-pulse text-[#f03a37]"), h.Role("status"),
			h.Span(g.Text(text)),
			h.Span(h.Class("sr-only"), g.Textf("Please wait while we load the %s %s", p.Label(), noun(p))),
		),
	)
}

func noun(p Platform) string {
	if p == Twitter {
		return "feed"
	}
	return "content"
}
