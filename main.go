package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/haruko-imports/site/assets"
	"github.com/haruko-imports/site/client"
	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/fixture"
	h "github.com/haruko-imports/site/handlers"
	"github.com/haruko-imports/site/page"
)

func main() {
	// Initialize fixture store
	store, err := fixture.NewStore(config.DataDir, config.FixtureCacheTTL)
	if err != nil {
		log.Fatalf("error initializing fixture store: %v", err)
	}
	defer store.Close()

	// The page reads fixtures in-process unless a remote content server is configured
	var source page.Source = store
	if config.ContentAPIURL != "" {
		remote, err := client.New(config.ContentAPIURL, config.ContentAPITimeout)
		if err != nil {
			log.Fatalf("error initializing content client: %v", err)
		}
		log.Printf("[content] reading fixtures from %s", config.ContentAPIURL)
		source = remote
	}

	prober, err := assets.NewProber(config.PublicDir, config.AssetProbeTimeout, config.AssetProbeCacheTTL)
	if err != nil {
		log.Fatalf("error initializing asset prober: %v", err)
	}

	h.Init(h.Deps{
		Store:     store,
		Loader:    page.Loader{Source: source, Probe: prober.Probe},
		PublicDir: config.PublicDir,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerBodyLimit,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	// Add rate limiter
	if config.ServerRateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        config.ServerRateLimitMax,
			Expiration: config.ServerRateLimitExp,
		}))
	}

	// Add logger middleware
	app.Use(logger.New())

	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	h.Register(app)

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	fmt.Printf("Serving static files from %s\n", config.PublicDir)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
