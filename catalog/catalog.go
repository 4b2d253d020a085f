package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haruko-imports/site/config"
)

// ErrNoDetail is returned when a truck id has no image or no description record.
var ErrNoDetail = errors.New("no data for truck")

// Truck is an image record from ktruckimage.json.
type Truck struct {
	ID           string `json:"id"`
	Alt          string `json:"alt"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ImageURL     string `json:"imageUrl"`
}

// TruckDescription is a spec sheet from ktruckdescription.json, joined to a Truck by ID.
type TruckDescription struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Year         Text   `json:"year"`
	Engine       Text   `json:"engine"`
	Transmission Text   `json:"transmission"`
	Capacity     Text   `json:"capacity"`
	Mileage      Text   `json:"mileage"`
	Price        Text   `json:"price"`
	Description  string `json:"description"`
}

// Spec is one labelled row of the detail view.
type Spec struct {
	Label string
	Value string
}

// Specs returns the fixed detail rows in display order.
func (d TruckDescription) Specs() []Spec {
	return []Spec{
		{"Year", d.Year.String()},
		{"Engine", d.Engine.String()},
		{"Transmission", d.Transmission.String()},
		{"Capacity", d.Capacity.String()},
		{"Mileage", d.Mileage.String()},
		{"Price", d.Price.String()},
	}
}

// Detail is a truck joined with its description.
type Detail struct {
	Truck
	Info TruckDescription
}

// Links overrides the hardcoded external link and logo path.
type Links struct {
	SkiptSkool string `json:"skiptSkool"`
	SVGImage   string `json:"svgImage"`
}

// DefaultLinks returns the fallback links.
func DefaultLinks() Links {
	return Links{
		SkiptSkool: config.DefaultSkiptSkoolURL,
		SVGImage:   config.DefaultSVGImage,
	}
}

// WithDefaults fills blank fields from DefaultLinks.
func (l Links) WithDefaults() Links {
	def := DefaultLinks()
	if strings.TrimSpace(l.SkiptSkool) == "" {
		l.SkiptSkool = def.SkiptSkool
	}
	if strings.TrimSpace(l.SVGImage) == "" {
		l.SVGImage = def.SVGImage
	}
	return l
}

// Catalog holds the two truck fixtures. Lookups are linear; the data is small.
type Catalog struct {
	Trucks       []Truck
	Descriptions []TruckDescription
}

func (c Catalog) Truck(id string) (Truck, bool) {
	for _, t := range c.Trucks {
		if t.ID == id {
			return t, true
		}
	}
	return Truck{}, false
}

func (c Catalog) Description(id string) (TruckDescription, bool) {
	for _, d := range c.Descriptions {
		if d.ID == id {
			return d, true
		}
	}
	return TruckDescription{}, false
}

// Detail joins the image and description records for id.
func (c Catalog) Detail(id string) (Detail, error) {
	t, ok := c.Truck(id)
	if !ok {
		return Detail{}, fmt.Errorf("%w %q: no image record", ErrNoDetail, id)
	}
	d, ok := c.Description(id)
	if !ok {
		return Detail{}, fmt.Errorf("%w %q: no description record", ErrNoDetail, id)
	}
	return Detail{Truck: t, Info: d}, nil
}

// Unmatched returns the ids of trucks that have no description.
func (c Catalog) Unmatched() []string {
	var ids []string
	for _, t := range c.Trucks {
		if _, ok := c.Description(t.ID); !ok {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
