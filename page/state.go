package page

import (
	"encoding/base64"
	"encoding/json"
	"log"

	"github.com/haruko-imports/site/catalog"
)

// MenuLink is an entry inside a sidebar submenu.
type MenuLink struct {
	Title    string
	Href     string
	External bool
}

// Submenu is a nested disclosure in the sidebar navigation.
type Submenu struct {
	ID    string
	Title string
	Links []MenuLink
}

// Submenus is the sidebar navigation in display order.
var Submenus = []Submenu{
	{
		ID:    "imports",
		Title: "Imports",
		Links: []MenuLink{
			{Title: "K Trucks", Href: "#section1"},
			{Title: "Kotatsu", Href: "#section2"},
			{Title: "Anime", Href: "#section3"},
			{Title: "Japanese Store", Href: "#section4"},
		},
	},
	{
		ID:    "community",
		Title: "Community",
		Links: []MenuLink{
			{Title: "Gaijin Haiku", Href: "#section5"},
			{Title: "Newsletter", Href: "#signup"},
		},
	},
}

func knownSubmenu(id string) bool {
	for _, s := range Submenus {
		if s.ID == id {
			return true
		}
	}
	return false
}

// State is the page's UI state. Holding the open submenu as a single id keeps
// at most one submenu open.
type State struct {
	Sidebar bool   `json:"sb,omitempty"`
	Submenu string `json:"sm,omitempty"`
	Modal   string `json:"md,omitempty"`
}

// SetSidebar opens or closes the sidebar. Closing also closes every submenu.
func (s *State) SetSidebar(open bool) {
	s.Sidebar = open
	if !open {
		s.Submenu = ""
	}
}

func (s *State) ToggleSidebar() {
	s.SetSidebar(!s.Sidebar)
}

// SetSubmenu opens or closes submenu id. Opening closes any other submenu and
// opens the sidebar. Unknown ids are ignored and false is returned.
func (s *State) SetSubmenu(id string, open bool) bool {
	if !knownSubmenu(id) {
		log.Printf("[page] unknown submenu %q", id)
		return false
	}
	if open {
		s.Submenu = id
		s.Sidebar = true
	} else if s.Submenu == id {
		s.Submenu = ""
	}
	return true
}

func (s *State) ToggleSubmenu(id string) bool {
	return s.SetSubmenu(id, !s.SubmenuOpen(id))
}

func (s State) SubmenuOpen(id string) bool {
	return s.Submenu != "" && s.Submenu == id
}

// OpenModal shows the detail for id. The state is untouched when id cannot be joined.
func (s *State) OpenModal(c catalog.Catalog, id string) (catalog.Detail, error) {
	d, err := c.Detail(id)
	if err != nil {
		return catalog.Detail{}, err
	}
	s.Modal = id
	return d, nil
}

func (s *State) CloseModal() {
	s.Modal = ""
}

func (s State) ModalOpen() bool {
	return s.Modal != ""
}

// KeyDown applies a key press and reports whether the state changed.
func (s *State) KeyDown(key string) bool {
	if key == "Escape" && s.ModalOpen() {
		s.CloseModal()
		return true
	}
	return false
}

// SidebarClasses returns the class list for the sidebar container.
func (s State) SidebarClasses() []string {
	classes := []string{"sidebar-container"}
	if s.Sidebar {
		classes = append(classes, "expanded")
	}
	if s.Submenu != "" {
		classes = append(classes, "submenu-expanded")
	}
	return classes
}

// BodyClasses returns the layout classes for the page body.
func (s State) BodyClasses() []string {
	var classes []string
	if s.Sidebar {
		classes = append(classes, "menu-expanded")
	}
	if s.Submenu != "" {
		classes = append(classes, "submenu-expanded")
	}
	return classes
}

// Encode serializes the state for a cookie.
func (s State) Encode() string {
	data, _ := json.Marshal(s)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeState parses an encoded state. Anything unreadable yields the zero state.
func DecodeState(v string) State {
	var s State
	if v == "" {
		return s
	}
	data, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return State{}
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}
	}
	if s.Submenu != "" && !knownSubmenu(s.Submenu) {
		s.Submenu = ""
	}
	return s
}
