package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/page"
)

const logoText = "SKIPT SKOOL"

func externalLink(href string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		g.Group(children),
	)
}

func logoFallback() g.Node {
	return P(Style("color: #E04C4C; font-weight: bold;"), g.Text(logoText))
}

// logoOnError hides a logo that fails in the browser and shows the text instead.
const logoOnError = `this.onerror=null;this.style.display='none';` +
	`this.parentNode.innerHTML='<p style="color: #E04C4C; font-weight: bold;">SKIPT SKOOL</p>';`

// HaikuContent is the link block of the last section. The logo is only
// rendered when its probe succeeded.
func HaikuContent(links catalog.Links, logoOK bool) g.Node {
	var logo g.Node
	if logoOK {
		logo = Img(
			Src(links.SVGImage),
			Alt("SKIPT SKOOL Logo"),
			Class("svg-image"),
			g.Attr("onerror", logoOnError),
		)
	} else {
		logo = logoFallback()
	}
	return g.Group([]g.Node{
		P(externalLink(links.SkiptSkool, g.Text(logoText))),
		Div(
			Class("svg-container"),
			externalLink(links.SkiptSkool, logo),
		),
	})
}

// TrucksContent is the first section: intro text, the scrollable grid and
// the modal skeleton.
func TrucksContent(intro string, m page.Model, detail *catalog.Detail) g.Node {
	return g.Group([]g.Node{
		P(g.Text(intro)),
		Div(
			Class("product-scroll-container"),
			TrucksGrid(m.Catalog, m.CatalogErr),
		),
		TruckModal(detail),
	})
}

func section(s catalog.Section, open bool, content g.Node) g.Node {
	return Details(
		ID(s.Key),
		Class("section-container"),
		g.If(open, g.Attr("open")),
		Summary(Class("section-summary cursor-pointer text-2xl font-semibold"), g.Text(s.Title)),
		Div(Class("section-content"), content),
	)
}

// Sections renders the five panels, special-casing the trucks and haiku panels.
func Sections(m page.Model, detail *catalog.Detail) g.Node {
	nodes := make([]g.Node, 0, len(m.Sections))
	for _, s := range m.Sections {
		var content g.Node
		open := false
		switch s.Key {
		case catalog.SectionTrucks:
			content = TrucksContent(s.Content, m, detail)
			// The modal lives inside this panel, so it must be open to show it.
			open = detail != nil
		case catalog.SectionHaiku:
			content = HaikuContent(m.Links, m.LogoOK)
		default:
			content = P(g.Text(s.Content))
		}
		nodes = append(nodes, section(s, open, content))
	}
	return Div(Class("sections space-y-4"), g.Group(nodes))
}
