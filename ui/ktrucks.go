package ui

import (
	"fmt"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/config"
)

const modalTarget = "#ktruck-modal"

// descriptions may carry simple markup; everything else is stripped.
var descriptionPolicy = bluemonday.UGCPolicy()

// placeholderOnError swaps a broken image for a sized placeholder naming the truck.
func placeholderOnError(size, truckID string) g.Node {
	src := fmt.Sprintf(config.PlaceholderImageURL, size, url.QueryEscape(truckID))
	return g.Attr("onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", src))
}

func truckPath(id string) string {
	return "/ui/ktrucks/" + url.PathEscape(id)
}

// TruckItem renders one grid tile. Clicking it opens the detail modal.
func TruckItem(t catalog.Truck) g.Node {
	return Div(
		Class("product-item cursor-pointer"),
		Data("id", t.ID),
		hx.Get(truckPath(t.ID)),
		hx.Target(modalTarget),
		hx.Swap("outerHTML"),
		Img(
			Class("product-image"),
			Src(t.ThumbnailURL),
			Alt(t.Alt),
			placeholderOnError("200x150", t.ID),
		),
		Div(Class("product-title"), g.Text(t.Alt)),
	)
}

// TrucksGrid rebuilds the whole grid from the catalog. A load error replaces
// the grid content with an inline message and a retry control.
func TrucksGrid(c catalog.Catalog, loadErr error) g.Node {
	if loadErr != nil {
		return Div(
			ID("ktrucks-grid"),
			Class("product-grid"),
			Div(
				Class("loading-indicator text-red-700"),
				g.Text("Error loading K Trucks data: "+loadErr.Error()),
			),
			buttonSecondary("Retry",
				withType("button"),
				withAttributes(
					hx.Get("/ui/ktrucks/grid"),
					hx.Target("#ktrucks-grid"),
					hx.Swap("outerHTML"),
				),
			),
		)
	}

	items := make([]g.Node, 0, len(c.Trucks))
	for _, t := range c.Trucks {
		items = append(items, TruckItem(t))
	}
	if len(items) == 0 {
		items = append(items, Div(Class("loading-indicator"), g.Text("No K Trucks available right now.")))
	}
	return Div(
		ID("ktrucks-grid"),
		Class("product-grid"),
		g.Group(items),
	)
}

func specItem(s catalog.Spec) g.Node {
	return Div(
		Class("spec-item"),
		Div(Class("spec-label"), g.Text(s.Label)),
		Div(Class("spec-value"), g.Text(s.Value)),
	)
}

// TruckDetail renders the modal body for one truck.
func TruckDetail(d catalog.Detail) g.Node {
	specs := d.Info.Specs()
	specNodes := make([]g.Node, 0, len(specs))
	for _, s := range specs {
		specNodes = append(specNodes, specItem(s))
	}
	return Div(
		Class("product-detail-container"),
		Img(
			Class("product-detail-image"),
			Src(d.ImageURL),
			Alt(d.Alt),
			placeholderOnError("800x500", d.ID),
		),
		H2(Class("product-detail-title"), g.Text(d.Info.Title)),
		Div(Class("product-detail-specs"), g.Group(specNodes)),
		P(Class("product-detail-description"), g.Raw(descriptionPolicy.Sanitize(d.Info.Description))),
	)
}

func modalCloseButton() g.Node {
	return Span(
		Class("close-modal cursor-pointer"),
		Role("button"),
		Aria("label", "Close"),
		hx.Post("/ui/ktrucks/close"),
		hx.Target(modalTarget),
		hx.Swap("outerHTML"),
		g.Raw("&times;"),
	)
}

// TruckModal renders the modal in its closed state when detail is nil.
// The open modal closes on its close control, on a click on the backdrop
// and on Escape.
func TruckModal(detail *catalog.Detail) g.Node {
	if detail == nil {
		return Div(
			ID("ktruck-modal"),
			Class("product-modal"),
			Style("display: none"),
			Div(Class("modal-content"), Div(Class("product-detail-container"))),
		)
	}
	return Div(
		ID("ktruck-modal"),
		Class("product-modal"),
		Style("display: flex"),
		Data("truck-id", detail.ID),
		hx.Post("/ui/ktrucks/close"),
		hx.Trigger("click target:#ktruck-modal"),
		hx.Target(modalTarget),
		hx.Swap("outerHTML"),
		Div(
			Class("modal-keys hidden"),
			hx.Post("/ui/keydown"),
			hx.Trigger("keyup[key=='Escape'] from:body"),
			hx.Vals(`{"key": "Escape"}`),
			hx.Target(modalTarget),
			hx.Swap("outerHTML"),
		),
		Div(
			Class("modal-content"),
			modalCloseButton(),
			TruckDetail(*detail),
		),
	)
}
