// Package migrate upgrades the on-disk gear catalog to the current record
// shape: every product gets a slug, the legacy single `link` field becomes a
// purchaseLinks array, and the file's lastUpdated stamp is refreshed. The
// transform is idempotent; rerunning it only touches lastUpdated.
package migrate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/saunaguide/saunaguide-server/internal/slug"
)

// Summary reports what a migration run changed.
type Summary struct {
	TotalProducts  int
	SlugsAdded     int
	LinksConverted int
	UniqueSlugs    int
}

// Migrator rewrites the catalog file in place.
type Migrator struct {
	logger *slog.Logger
	now    func() time.Time
}

func New(logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Migrator{logger: logger, now: time.Now}
}

// Run migrates the catalog at path and writes it back atomically.
func (m *Migrator) Run(path string) (Summary, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the operator
	if err != nil {
		return Summary{}, fmt.Errorf("read catalog: %w", err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return Summary{}, fmt.Errorf("parse catalog: %w", err)
	}

	summary, err := m.apply(doc)
	if err != nil {
		return Summary{}, err
	}

	doc.Set("lastUpdated", m.now().Format("2006-01-02"))

	out, err := EncodeDocument(doc)
	if err != nil {
		return Summary{}, fmt.Errorf("encode catalog: %w", err)
	}
	if err := writeAtomic(path, out); err != nil {
		return Summary{}, fmt.Errorf("write catalog: %w", err)
	}

	return summary, nil
}

func (m *Migrator) apply(doc *Object) (Summary, error) {
	var summary Summary
	seen := make(map[string]bool)

	categories := doc.Array("categories")
	if categories == nil {
		return Summary{}, fmt.Errorf("catalog has no categories array")
	}

	for _, rawCat := range categories {
		category, ok := rawCat.(*Object)
		if !ok {
			return Summary{}, fmt.Errorf("category entry is not an object")
		}
		for _, rawProd := range category.Array("products") {
			product, ok := rawProd.(*Object)
			if !ok {
				return Summary{}, fmt.Errorf("product entry in category %q is not an object", category.String("id"))
			}
			summary.TotalProducts++
			m.migrateProduct(product, seen, &summary)
		}
	}

	summary.UniqueSlugs = len(seen)
	return summary, nil
}

func (m *Migrator) migrateProduct(product *Object, seen map[string]bool, summary *Summary) {
	name := product.String("name")

	switch {
	case product.String("slug") != "":
		seen[product.String("slug")] = true
	case slug.Make(name) == "":
		// Name strips to nothing, leave the slug for the validator to flag.
		m.logger.Warn("cannot derive slug", "name", name)
	default:
		base := slug.Make(name)
		unique := base
		for counter := 1; seen[unique]; counter++ {
			unique = fmt.Sprintf("%s-%d", base, counter)
		}
		if unique != base {
			m.logger.Info("slug collision, suffix applied", "name", name, "slug", unique)
		}
		seen[unique] = true
		product.Set("slug", unique)
		summary.SlugsAdded++
	}

	// Legacy single-link form: fold into purchaseLinks, once.
	if link := product.String("link"); link != "" {
		if _, migrated := product.Get("purchaseLinks"); !migrated {
			amazon := NewObject()
			amazon.Set("name", "Amazon")
			amazon.Set("url", link)
			amazon.Set("type", "amazon")
			product.Set("purchaseLinks", []any{amazon})
			product.Delete("link")
			summary.LinksConverted++
		}
	}

	if _, ok := product.Get("purchaseLinks"); !ok {
		product.Set("purchaseLinks", []any{})
	}
}

// writeAtomic stages the content next to the target and renames it into
// place, so a crash mid-write never leaves a truncated catalog.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
