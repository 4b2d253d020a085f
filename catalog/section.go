package catalog

import "fmt"

// Section is one of the five collapsible panels on the home page.
type Section struct {
	Key     string
	Title   string
	Content string
}

const (
	SectionTrucks = "section1"
	SectionHaiku  = "section5"
)

var sectionText = []struct{ title, content string }{
	{"K Trucks", "Browse our selection of compact Japanese Kei trucks, perfect for urban deliveries and small businesses. Features include excellent fuel economy and easy maneuverability."},
	{"Kotatsu", "Authentic Japanese Kotatsu tables, combining comfort and functionality. Perfect for keeping warm during winter while enjoying meals or relaxing."},
	{"Anime", "Explore our collection of Japanese animation, movies, music, and other media. Direct imports from Japan with original packaging."},
	{"Japanese Store", "Discover unique Japanese clothing styles and household items. From traditional wear to modern Japanese home goods."},
	{"Gaijin Haiku", ""},
}

// Sections returns the panels keyed section1..section5 in page order.
func Sections() []Section {
	sections := make([]Section, len(sectionText))
	for i, s := range sectionText {
		sections[i] = Section{
			Key:     fmt.Sprintf("section%d", i+1),
			Title:   s.title,
			Content: s.content,
		}
	}
	return sections
}
