package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts every route. The home page catch-all must stay last.
func Register(app *fiber.App) {
	// Health check
	app.Get("/health", HandleHealth)

	// Content API
	api := app.Group("/api")
	api.Get("/data/:filename", HandleData)
	api.Post("/signup", signupRateLimiter(), HandleSignup)
	api.Get("/debug/check-assets", HandleCheckAssets)
	api.Get("/debug/server-info", HandleServerInfo)
	api.Post("/debug/cache/clear", HandleClearCache)

	// Page interactions for htmx
	ui := app.Group("/ui")
	ui.Post("/sidebar/toggle", HandleSidebarToggle)
	ui.Post("/submenu/:id/toggle", HandleSubmenuToggle)
	ui.Get("/ktrucks/grid", HandleTrucksGrid)
	ui.Post("/ktrucks/close", HandleModalClose)
	ui.Get("/ktrucks/:id", HandleTruckDetail)
	ui.Post("/keydown", HandleKeyDown)

	// Static files
	app.Static("/assets", assetDir())
	app.Static("/", deps.PublicDir)

	// Every other GET gets the page; other methods end in 404/405
	app.Get("/*", HandleHome)
}
