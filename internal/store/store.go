// Package store holds the loaded site data: the gear catalog, the brand and
// sauna directories, and the guide library. All data is build-time static
// JSON/MDX; the store loads it once at startup and swaps in a fresh snapshot
// when the watcher reports a settled change. Readers always see a complete,
// immutable snapshot.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/saunaguide/saunaguide-server/internal/brands"
	"github.com/saunaguide/saunaguide-server/internal/catalog"
	"github.com/saunaguide/saunaguide-server/internal/directory"
	"github.com/saunaguide/saunaguide-server/internal/guides"
	"github.com/saunaguide/saunaguide-server/internal/search"
)

// Paths locates the data files on disk.
type Paths struct {
	Gear          string
	Manufacturers string
	Saunas        string
	GuidesDir     string
}

// Store is the process-wide data snapshot holder.
type Store struct {
	paths  Paths
	images *catalog.ImageResolver
	logger *slog.Logger

	mu      sync.RWMutex
	catalog *catalog.Catalog
	brands  *brands.Directory
	saunas  *directory.Directory
	guides  *guides.Library

	onReload func()
}

// New creates a store. Call Load before serving.
func New(paths Paths, images *catalog.ImageResolver, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{paths: paths, images: images, logger: logger}
}

// SetOnReload registers a callback run after every successful Reload, for
// dependents that derive state from the snapshot (the search index).
func (s *Store) SetOnReload(fn func()) {
	s.onReload = fn
}

// Load reads every data source. A malformed gear catalog is fatal; the other
// sources degrade to an empty collection with the failure logged, so one bad
// file never takes the whole site down.
func (s *Store) Load() error {
	cat, err := catalog.Load(s.paths.Gear, s.images, s.logger)
	if err != nil {
		return fmt.Errorf("load gear catalog: %w", err)
	}

	brandDir, err := brands.Load(s.paths.Manufacturers, s.logger)
	if err != nil {
		s.logger.Error("brand directory unavailable", "path", s.paths.Manufacturers, "error", err)
		brandDir = &brands.Directory{}
	}

	saunaDir, err := directory.Load(s.paths.Saunas, s.logger)
	if err != nil {
		s.logger.Error("sauna directory unavailable", "path", s.paths.Saunas, "error", err)
		saunaDir = &directory.Directory{}
	}

	guideLib, err := guides.Load(s.paths.GuidesDir, s.logger)
	if err != nil {
		s.logger.Error("guide library unavailable", "path", s.paths.GuidesDir, "error", err)
		guideLib = &guides.Library{}
	}

	s.mu.Lock()
	s.catalog = cat
	s.brands = brandDir
	s.saunas = saunaDir
	s.guides = guideLib
	s.mu.Unlock()

	return nil
}

// Reload re-reads everything and swaps the snapshot. On a gear catalog
// failure the previous snapshot stays in place.
func (s *Store) Reload() error {
	if err := s.Load(); err != nil {
		return err
	}
	if s.onReload != nil {
		s.onReload()
	}
	return nil
}

// Catalog returns the current gear catalog snapshot.
func (s *Store) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Brands returns the current manufacturer directory snapshot.
func (s *Store) Brands() *brands.Directory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brands
}

// Saunas returns the current sauna directory snapshot.
func (s *Store) Saunas() *directory.Directory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saunas
}

// Guides returns the current guide library snapshot.
func (s *Store) Guides() *guides.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guides
}

// Documents flattens the whole snapshot into search index records.
func (s *Store) Documents() []*search.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []*search.Document
	if s.catalog != nil {
		for _, p := range s.catalog.AllProducts() {
			docs = append(docs, search.ProductDocument(p))
		}
	}
	if s.saunas != nil {
		for _, sauna := range s.saunas.All() {
			docs = append(docs, search.SaunaDocument(sauna))
		}
	}
	if s.brands != nil {
		for _, m := range s.brands.All() {
			docs = append(docs, search.BrandDocument(m))
		}
	}
	if s.guides != nil {
		for _, g := range s.guides.All() {
			docs = append(docs, search.GuideDocument(g))
		}
	}
	return docs
}
