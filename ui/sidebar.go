package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/haruko-imports/site/page"
)

// disclosure renders a <details> whose open state is owned by the server:
// clicking the summary posts the toggle and the response replaces target.
func disclosure(class string, open bool, summaryText, togglePath, target string, children ...g.Node) g.Node {
	return Details(
		Class(class),
		g.If(open, g.Attr("open")),
		Summary(
			Class(strings.TrimSuffix(class, "-details")+"-summary cursor-pointer"),
			hx.Post(togglePath),
			hx.Target(target),
			hx.Swap("outerHTML"),
			g.Attr("onclick", "event.preventDefault()"),
			g.Text(summaryText),
		),
		g.Group(children),
	)
}

func menuLink(l page.MenuLink) g.Node {
	return Li(
		A(
			Href(l.Href),
			Class("block px-4 py-1 text-gray-700 hover:bg-gray-100"),
			g.If(l.External, g.Group([]g.Node{Target("_blank"), Rel("noopener noreferrer")})),
			g.Text(l.Title),
		),
	)
}

func submenu(s page.Submenu, state page.State) g.Node {
	links := make([]g.Node, 0, len(s.Links))
	for _, l := range s.Links {
		links = append(links, menuLink(l))
	}
	return disclosure("submenu-details", state.SubmenuOpen(s.ID), s.Title,
		fmt.Sprintf("/ui/submenu/%s/toggle", s.ID), "#sidebar",
		Ul(Class("submenu-list"), g.Group(links)),
	)
}

// Sidebar renders the navigation sidebar for the given state.
func Sidebar(state page.State) g.Node {
	menus := make([]g.Node, 0, len(page.Submenus))
	for _, s := range page.Submenus {
		menus = append(menus, submenu(s, state))
	}
	return Aside(
		ID("sidebar"),
		Class(strings.Join(state.SidebarClasses(), " ")),
		disclosure("sidebar-details", state.Sidebar, "Menu", "/ui/sidebar/toggle", "#sidebar",
			Nav(Class("sidebar-nav"), g.Group(menus)),
		),
		bodyClassScript(state),
	)
}
