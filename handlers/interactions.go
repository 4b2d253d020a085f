package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/local"
	"github.com/haruko-imports/site/ui"
)

// htmx partials. Each applies one state transition, stores the new state and
// renders only the fragment that changed. A 204 leaves the page untouched.

func HandleSidebarToggle(c *fiber.Ctx) error {
	state := local.GetState(c)
	state.ToggleSidebar()
	local.SetState(c, state)
	return render(c, ui.Sidebar(state))
}

func HandleSubmenuToggle(c *fiber.Ctx) error {
	state := local.GetState(c)
	if state.ToggleSubmenu(c.Params("id")) {
		local.SetState(c, state)
	}
	return render(c, ui.Sidebar(state))
}

func HandleTruckDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	cat, err := deps.Loader.Catalog(c.UserContext())
	if err != nil {
		log.Printf("[page] cannot show truck %s: %v", id, err)
		return c.SendStatus(fiber.StatusNoContent)
	}

	state := local.GetState(c)
	d, err := state.OpenModal(cat, id)
	if err != nil {
		log.Printf("[page] could not find data for truck: %v", err)
		return c.SendStatus(fiber.StatusNoContent)
	}
	local.SetState(c, state)
	return render(c, ui.TruckModal(&d))
}

func HandleModalClose(c *fiber.Ctx) error {
	state := local.GetState(c)
	state.CloseModal()
	local.SetState(c, state)
	return render(c, ui.TruckModal(nil))
}

func HandleKeyDown(c *fiber.Ctx) error {
	state := local.GetState(c)
	if !state.KeyDown(c.FormValue("key")) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	local.SetState(c, state)
	return render(c, ui.TruckModal(nil))
}

// HandleTrucksGrid rebuilds the grid, e.g. after a failed first load.
func HandleTrucksGrid(c *fiber.Ctx) error {
	cat, err := deps.Loader.Catalog(c.UserContext())
	return render(c, ui.TrucksGrid(cat, err))
}
