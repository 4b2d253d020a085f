package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	_ "golang.org/x/image/webp"

	"github.com/haruko-imports/site/cache"
)

// File is one entry of the asset directory listing.
type File struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
}

// Inventory lists the files in dir, sorted by name. Raster images also carry
// their dimensions; anything that does not decode is listed without them.
func Inventory(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		f := File{Name: e.Name(), Size: info.Size()}
		if cfg, format, err := decodeConfig(filepath.Join(dir, e.Name())); err == nil {
			f.Width, f.Height, f.Format = cfg.Width, cfg.Height, format
		}
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func decodeConfig(name string) (image.Config, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()
	return image.DecodeConfig(f)
}

// Prober checks that an image reference can be loaded before the page commits to it.
type Prober struct {
	publicDir string
	timeout   time.Duration
	http      *fasthttp.Client
	results   *cache.Cache[bool]
}

// NewProber creates a prober. A positive cacheTTL remembers URL probe results
// for that long; local files are always checked.
func NewProber(publicDir string, timeout, cacheTTL time.Duration) (*Prober, error) {
	p := &Prober{
		publicDir: publicDir,
		timeout:   timeout,
		http: &fasthttp.Client{
			Name:        "haruko-site-probe",
			ReadTimeout: timeout,
		},
	}
	if cacheTTL > 0 {
		c, err := cache.New[bool]("Asset Probe Cache", cacheTTL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize probe cache: %w", err)
		}
		p.results = c
	}
	return p, nil
}

// Probe reports whether ref can be loaded. Relative and root-relative paths
// are resolved against the public directory; http(s) URLs get a HEAD request.
func (p *Prober) Probe(ctx context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return p.probeURL(ctx, ref)
	}
	return p.probeFile(ref)
}

func (p *Prober) probeFile(ref string) bool {
	local, err := LocalPath(p.publicDir, ref)
	if err != nil {
		log.Printf("[assets] %v", err)
		return false
	}
	info, err := os.Stat(local)
	return err == nil && !info.IsDir()
}

func (p *Prober) probeURL(ctx context.Context, ref string) bool {
	if p.results != nil {
		if ok, found := p.results.Get(ref); found {
			return ok
		}
	}
	if ctx.Err() != nil {
		return false
	}
	ok := p.head(ref)
	if p.results != nil {
		p.results.Set(ref, ok, 1)
		// Make the result visible to the next render.
		p.results.Wait()
	}
	return ok
}

func (p *Prober) head(ref string) bool {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(ref)
	req.Header.SetMethod(fasthttp.MethodHead)
	resp.SkipBody = true
	if err := p.http.DoTimeout(req, resp, p.timeout); err != nil {
		log.Printf("[assets] probe %s: %v", ref, err)
		return false
	}
	return resp.StatusCode() < 400
}

// LocalPath maps a page-relative reference like ./assets/x.svg onto publicDir.
// References that climb out of publicDir are rejected.
func LocalPath(publicDir, ref string) (string, error) {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if strings.Contains(ref, "..") {
		return "", fmt.Errorf("asset path %q escapes the public directory", ref)
	}
	clean := path.Clean("/" + strings.TrimPrefix(ref, "./"))
	return filepath.Join(publicDir, filepath.FromSlash(clean)), nil
}
