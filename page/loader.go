package page

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/haruko-imports/site/catalog"
)

// Source supplies the three fixtures the page is built from.
type Source interface {
	Trucks(ctx context.Context) ([]catalog.Truck, error)
	Descriptions(ctx context.Context) ([]catalog.TruckDescription, error)
	Links(ctx context.Context) (catalog.Links, error)
}

// Model is everything needed to render the home page.
type Model struct {
	Sections []catalog.Section
	Catalog  catalog.Catalog
	Links    catalog.Links

	// CatalogErr is set when either truck fixture failed; only the grid panel shows it.
	CatalogErr error
	// LogoOK is false when the logo probe failed and the text fallback should render.
	LogoOK bool
}

// Loader builds page models from a Source.
type Loader struct {
	Source Source
	// Probe checks that an image path can be loaded. Nil treats every path as loadable.
	Probe func(ctx context.Context, path string) bool
}

// Load fetches the three fixtures concurrently and waits for all of them.
// Failures are isolated: links fall back to defaults, truck errors are kept
// on the model for the grid panel.
func (l Loader) Load(ctx context.Context) Model {
	var (
		trucks []catalog.Truck
		descs  []catalog.TruckDescription
		links  catalog.Links
		errs   [3]error
		g      errgroup.Group
	)
	// Each fixture fails on its own: a links error must not cancel or hide the
	// truck fetches, so errors are kept per slot and the group only joins.
	g.Go(func() error {
		trucks, errs[0] = l.Source.Trucks(ctx)
		return nil
	})
	g.Go(func() error {
		descs, errs[1] = l.Source.Descriptions(ctx)
		return nil
	})
	g.Go(func() error {
		links, errs[2] = l.Source.Links(ctx)
		return nil
	})
	_ = g.Wait()

	m := Model{Sections: catalog.Sections()}

	if errs[2] != nil {
		log.Printf("[page] error loading links, using defaults: %v", errs[2])
		links = catalog.Links{}
	}
	m.Links = links.WithDefaults()

	switch {
	case errs[0] != nil:
		m.CatalogErr = errs[0]
	case errs[1] != nil:
		m.CatalogErr = errs[1]
	default:
		m.Catalog = buildCatalog(trucks, descs)
	}
	if m.CatalogErr != nil {
		log.Printf("[page] error loading K Truck data: %v", m.CatalogErr)
	}

	m.LogoOK = l.probe(ctx, m.Links.SVGImage)
	return m
}

// Catalog loads only the truck fixtures.
func (l Loader) Catalog(ctx context.Context) (catalog.Catalog, error) {
	var (
		trucks []catalog.Truck
		descs  []catalog.TruckDescription
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trucks, err = l.Source.Trucks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		descs, err = l.Source.Descriptions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("error loading K Truck data: %w", err)
	}
	return buildCatalog(trucks, descs), nil
}

func (l Loader) probe(ctx context.Context, path string) bool {
	if l.Probe == nil {
		return true
	}
	ok := l.Probe(ctx, path)
	if !ok {
		log.Printf("[page] failed to load logo %s, using text fallback", path)
	}
	return ok
}

func buildCatalog(trucks []catalog.Truck, descs []catalog.TruckDescription) catalog.Catalog {
	trucks, errs := catalog.ValidTrucks(trucks)
	for _, err := range errs {
		log.Printf("[page] skipping truck: %v", err)
	}
	descs, errs = catalog.ValidDescriptions(descs)
	for _, err := range errs {
		log.Printf("[page] skipping description: %v", err)
	}

	c := catalog.Catalog{Trucks: trucks, Descriptions: descs}
	if ids := c.Unmatched(); len(ids) > 0 {
		log.Printf("[page] trucks without descriptions: %v", ids)
	}
	log.Printf("[page] K Truck data loaded: %d images, %d descriptions", len(trucks), len(descs))
	return c
}
