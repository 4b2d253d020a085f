package ui

import (
	g "maragu.dev/gomponents"

	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/page"
)

// HomePage is the single HTML document served for every non-API path.
// detail is non-nil when the state has the modal open.
func HomePage(m page.Model, state page.State, detail *catalog.Detail) g.Node {
	return Page(
		config.SiteTitle,
		state,
		[]g.Node{
			pageHeader(config.SiteTitle),
			Sections(m, detail),
			SignupForm(),
		},
	)
}
