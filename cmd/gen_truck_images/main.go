// Command gen_truck_images writes placeholder K truck photos for every entry
// in the image fixture, at the paths the fixture points to.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/haruko-imports/site/assets"
	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/fixture"
)

const (
	fullWidth  = 800
	fullHeight = 600
	thumbWidth = 200
)

func main() {
	dataDir := flag.String("data", config.DataDir, "fixture directory")
	publicDir := flag.String("public", config.PublicDir, "static file root")
	overwrite := flag.Bool("overwrite", false, "replace images that already exist")
	flag.Parse()

	store, err := fixture.NewStore(*dataDir, 0)
	if err != nil {
		log.Fatalf("Failed to open fixtures: %v", err)
	}
	trucks, err := store.Trucks(context.Background())
	if err != nil {
		log.Fatalf("Failed to load trucks: %v", err)
	}
	trucks, errs := catalog.ValidTrucks(trucks)
	for _, err := range errs {
		log.Printf("Skipping truck: %v", err)
	}

	written := 0
	for _, t := range trucks {
		n, err := writeTruckImages(t, *publicDir, *overwrite)
		if err != nil {
			log.Printf("Failed to write images for %s: %v", t.ID, err)
			continue
		}
		written += n
	}
	fmt.Printf("Wrote %d images for %d trucks\n", written, len(trucks))
}

// writeTruckImages renders the full image and the thumbnail for one truck.
// Remote URLs are left alone.
func writeTruckImages(t catalog.Truck, publicDir string, overwrite bool) (int, error) {
	caption := t.Alt
	if caption == "" {
		caption = t.ID
	}
	full, err := generateTruckImage(t.ID, caption, fullWidth, fullHeight)
	if err != nil {
		return 0, err
	}

	targets := []struct {
		ref     string
		width   int
		quality int
	}{
		{t.ImageURL, fullWidth, 80},
		{t.ThumbnailURL, thumbWidth, 60},
	}

	written := 0
	for _, target := range targets {
		if target.ref == "" || strings.HasPrefix(target.ref, "http://") || strings.HasPrefix(target.ref, "https://") {
			continue
		}
		path, err := assets.LocalPath(publicDir, target.ref)
		if err != nil {
			return written, err
		}
		if _, err := os.Stat(path); err == nil && !overwrite {
			continue
		}

		img := full
		if target.width != fullWidth {
			img = scaleTo(full, target.width)
		}
		buf, err := encodeFor(path, img, target.quality)
		if err != nil {
			return written, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, err
		}
		fmt.Printf("Wrote %s\n", path)
		written++
	}
	return written, nil
}
