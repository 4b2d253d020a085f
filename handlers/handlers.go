package handlers

import (
	"path/filepath"
	"time"

	"github.com/haruko-imports/site/fixture"
	"github.com/haruko-imports/site/page"
)

// Deps are the handlers' collaborators, set once at startup.
type Deps struct {
	Store     *fixture.Store
	Loader    page.Loader
	PublicDir string
}

var (
	deps      Deps
	startedAt = time.Now()
)

// Init sets the handlers' dependencies. Call it before Register.
func Init(d Deps) {
	deps = d
}

func assetDir() string {
	return filepath.Join(deps.PublicDir, "assets")
}
