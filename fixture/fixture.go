package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haruko-imports/site/cache"
	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/config"
)

var (
	ErrNotFound  = errors.New("file not found")
	ErrMalformed = errors.New("malformed JSON")
)

// Store reads JSON fixtures from a directory. Without a cache every read hits disk.
type Store struct {
	dir   string
	cache *cache.Cache[json.RawMessage]
}

// NewStore opens a store over dir. A positive ttl caches validated file contents.
func NewStore(dir string, ttl time.Duration) (*Store, error) {
	s := &Store{dir: dir}
	if ttl > 0 {
		c, err := cache.New("Fixture Cache", ttl, func(v json.RawMessage) int64 {
			return int64(len(v))
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize fixture cache: %w", err)
		}
		s.cache = c
		log.Printf("[fixture] cache enabled, ttl %s", ttl)
	}
	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Ping reports whether the data directory is readable.
func (s *Store) Ping() error {
	_, err := os.ReadDir(s.dir)
	return err
}

// CacheStats returns nil when caching is off.
func (s *Store) CacheStats() map[string]any {
	if s.cache == nil {
		return nil
	}
	return s.cache.Stats()
}

// ClearCache drops every cached fixture. It reports false when caching is off.
func (s *Store) ClearCache() bool {
	if s.cache == nil {
		return false
	}
	s.cache.Clear()
	log.Printf("[fixture] cache cleared")
	return true
}

// Close releases the cache, if any.
func (s *Store) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// validName rejects anything that is not a plain file name inside the data directory.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}

// Read returns the raw contents of name after checking they are valid JSON.
func (s *Store) Read(name string) (json.RawMessage, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if s.cache != nil {
		if data, ok := s.cache.Get(name); ok {
			return data, nil
		}
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		// Any read failure counts as not found, directories included.
		return nil, fmt.Errorf("%s: %w: %v", name, ErrNotFound, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: %w", name, ErrMalformed)
	}

	if s.cache != nil {
		s.cache.Set(name, data, 0)
	}
	return data, nil
}

// Decode reads name into v. A document of the wrong shape counts as malformed.
func (s *Store) Decode(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.Read(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w: %v", name, ErrMalformed, err)
	}
	return nil
}

func (s *Store) Trucks(ctx context.Context) ([]catalog.Truck, error) {
	var trucks []catalog.Truck
	err := s.Decode(ctx, config.TruckImagesFile, &trucks)
	return trucks, err
}

func (s *Store) Descriptions(ctx context.Context) ([]catalog.TruckDescription, error) {
	var descs []catalog.TruckDescription
	err := s.Decode(ctx, config.TruckDescriptionsFile, &descs)
	return descs, err
}

func (s *Store) Links(ctx context.Context) (catalog.Links, error) {
	var links catalog.Links
	err := s.Decode(ctx, config.LinksFile, &links)
	return links, err
}
