package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/local"
	"github.com/haruko-imports/site/ui"
)

// HandleHome renders the single HTML document. It also answers every path
// nothing else matched.
func HandleHome(c *fiber.Ctx) error {
	state := local.GetState(c)
	m := deps.Loader.Load(c.UserContext())

	var detail *catalog.Detail
	if state.ModalOpen() {
		d, err := m.Catalog.Detail(state.Modal)
		if err != nil {
			log.Printf("[page] closing modal: %v", err)
			state.CloseModal()
			local.SetState(c, state)
		} else {
			detail = &d
		}
	}

	return render(c, ui.HomePage(m, state, detail))
}
