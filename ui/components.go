package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/haruko-imports/site/page"
)

// ErrorPage is the full-page fallback for errors outside the API.
func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		page.State{},
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
			P(buttonSecondary("Back to the home page", withHref("/"))),
		},
	)
}
