// Package views composes the page from gomponents nodes.
package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"g1.vc/site/internal/models"
	"g1.vc/site/internal/shell"
)

const (
	tailwindCDN    = "https://cdn.tailwindcss.com"
	siteStylesheet = "/static/css/site.css"
	wasmExecPath   = "/client/wasm_exec.js"
	wasmBinaryPath = "/client/app.wasm"
)

const wasmBootstrap = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + wasmBinaryPath + `"), go.importObject)
  .then((result) => go.run(result.instance))
  .catch((err) => console.warn("client unavailable", err));`

// Layout wraps body in the document shell: font, metadata, styles and the
// optional WebAssembly client.
func Layout(meta models.Meta, state shell.State, withClient bool, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Class("font-sans"),
			Data("reduced-motion", strconv.FormatBool(state.ReducedMotion)),
			StyleAttr("--font-barlow-condensed: '"+meta.FontFamily+"', sans-serif"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Title(meta.Title),
				Meta(Name("description"), Content(meta.Description)),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), g.Attr("crossorigin")),
				g.If(meta.FontURL != "", Link(Rel("stylesheet"), Href(meta.FontURL))),
				Script(Src(tailwindCDN)),
				Link(Rel("stylesheet"), Href(siteStylesheet)),
				g.If(withClient, g.Group{
					Script(Src(wasmExecPath)),
					Script(g.Raw(wasmBootstrap)),
				}),
			),
			Body(body...),
		),
	)
}
