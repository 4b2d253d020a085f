package handlers

import (
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/assets"
)

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// HandleCheckAssets lists the asset directory, with image dimensions where they decode.
func HandleCheckAssets(c *fiber.Ctx) error {
	dir := absPath(assetDir())
	files, err := assets.Inventory(dir)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to read asset directory",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"assetPath": dir,
		"files":     files,
	})
}

// HandleClearCache empties the fixture cache so edited fixtures show up
// before their TTL runs out.
func HandleClearCache(c *fiber.Ctx) error {
	cleared := deps.Store.ClearCache()
	resp := fiber.Map{"cleared": cleared}
	if stats := deps.Store.CacheStats(); stats != nil {
		resp["fixtureCache"] = stats
	}
	return c.JSON(resp)
}

func HandleServerInfo(c *fiber.Ctx) error {
	info := fiber.Map{
		"goVersion":  runtime.Version(),
		"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		"uptime":     time.Since(startedAt).Seconds(),
		"serverTime": time.Now().UTC().Format(time.RFC3339),
		"publicPath": absPath(deps.PublicDir),
		"dataPath":   absPath(deps.Store.Dir()),
	}
	if stats := deps.Store.CacheStats(); stats != nil {
		info["fixtureCache"] = stats
	}
	return c.JSON(info)
}
