package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// loadDotenv reads .env once, before the first variable lookup. A missing file is fine.
func loadDotenv() {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("[config] error loading .env: %v", err)
		}
	})
}

func getEnv(key, fallback string) string {
	loadDotenv()
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// Server
var (
	ServerPort         = getEnv("PORT", "3000")
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 0) // 0 disables the limiter
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXP", time.Minute)
	ServerBodyLimit    = 1 << 20
)

// Signup rate limiting, per IP
var (
	SignupRateLimitMax = getEnvInt("SIGNUP_RATE_LIMIT_MAX", 10) // 0 disables the limiter
	SignupRateLimitExp = getEnvDuration("SIGNUP_RATE_LIMIT_EXP", time.Minute)
)

// Files
var (
	DataDir   = getEnv("DATA_DIR", "./data")
	PublicDir = getEnv("PUBLIC_DIR", "./static")
)

// Fixture cache; a zero TTL reads every fixture fresh from disk.
var FixtureCacheTTL = getEnvDuration("FIXTURE_CACHE_TTL", 0)

// Page controller
var (
	// ContentAPIURL points the page controller at a remote content server.
	// Empty means fixtures are read in-process.
	ContentAPIURL      = getEnv("CONTENT_API_URL", "")
	ContentAPITimeout  = getEnvDuration("CONTENT_API_TIMEOUT", 5*time.Second)
	AssetProbeTimeout  = getEnvDuration("ASSET_PROBE_TIMEOUT", 2*time.Second)
	AssetProbeCacheTTL = getEnvDuration("ASSET_PROBE_CACHE_TTL", time.Minute) // 0 probes remote logos on every render
)

// Fixture names
const (
	TruckImagesFile       = "ktruckimage.json"
	TruckDescriptionsFile = "ktruckdescription.json"
	LinksFile             = "links.json"
)

// Link defaults used when links.json is missing or leaves a field blank.
const (
	DefaultSkiptSkoolURL = "https://skiptskool.onrender.com/"
	DefaultSVGImage      = "./assets/SKPTSKL-T1.svg"
)

// Front-end
const (
	SiteTitle      = "Haruko Imports"
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"
	SiteCSSURL     = "/css/site.css"
	StateCookie    = "ui_state"
	// PlaceholderImageURL is formatted with size and truck id when an image fails to load.
	PlaceholderImageURL = "https://via.placeholder.com/%s?text=%s"
)
