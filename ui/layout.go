package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/page"
)

// ---- Page Layout ----

func Page(title string, state page.State, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("icon"), Type("image/svg+xml"), Href("/assets/favicon.svg")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Link(
				Rel("stylesheet"),
				Href(config.SiteCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("page-wrapper flex min-h-screen"),
				Sidebar(state),
				Main(
					Class("page-main flex-1 px-4 py-8"),
					g.Group(content),
				),
			),
		},
	})
}

// bodyClassScript syncs the body's layout classes with the sidebar state.
// It rides along with every sidebar render so htmx swaps keep the body in step.
func bodyClassScript(state page.State) g.Node {
	return Script(g.Rawf("document.body.className = %q;", strings.Join(state.BodyClasses(), " ")))
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
