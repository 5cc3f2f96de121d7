package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/saunaguide/saunaguide-server/internal/domain"
	"github.com/saunaguide/saunaguide-server/internal/slug"
)

// Load parses the gear catalog file and normalizes it into an immutable
// Catalog. Malformed JSON is fatal: the caller has no runtime fallback
// for a corrupt build-time data file, so the error must abort startup.
//
// Per-item problems (missing optional fields, unresolvable images) are
// not errors; they degrade to zero values and are logged by the resolver.
func Load(path string, images *ImageResolver, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- data file path comes from config
	if err != nil {
		return nil, fmt.Errorf("read gear catalog: %w", err)
	}

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse gear catalog %s: %w", path, err)
	}

	c := &Catalog{
		lastUpdated: raw.LastUpdated,
		categories:  make([]domain.Category, 0, len(raw.Categories)),
		bySlug:      make(map[string]int),
	}

	for _, rc := range raw.Categories {
		cat := domain.Category{
			ID:          rc.ID,
			Name:        rc.Name,
			Description: rc.Description,
			Products:    make([]domain.Product, 0, len(rc.Products)),
		}
		for _, rp := range rc.Products {
			p := transformProduct(rp, rc.ID, images, logger)
			cat.Products = append(cat.Products, p)

			// First occurrence wins; duplicates are a data bug the
			// validator reports, queries must still stay deterministic.
			if _, seen := c.bySlug[p.Slug]; !seen {
				c.bySlug[p.Slug] = len(c.products)
			}
			c.products = append(c.products, p)
		}
		c.categories = append(c.categories, cat)
	}

	logger.Info("gear catalog loaded",
		"path", path,
		"categories", len(c.categories),
		"products", len(c.products),
		"last_updated", c.lastUpdated,
	)

	return c, nil
}

// transformProduct maps one raw record to the canonical Product shape.
// Read-time only: nothing here mutates the source file. Slug uniqueness
// is guaranteed upstream by the migrator.
func transformProduct(rp rawProduct, categoryID string, images *ImageResolver, logger *slog.Logger) domain.Product {
	s := rp.Slug
	if s == "" {
		s = slug.Make(rp.Name)
	}

	// Convert the legacy single link exactly as the migrator would.
	links := make([]domain.PurchaseLink, 0, len(rp.PurchaseLinks))
	for _, rl := range rp.PurchaseLinks {
		links = append(links, domain.PurchaseLink{
			Name: rl.Name,
			URL:  rl.URL,
			Type: domain.LinkType(rl.Type),
		})
	}
	if len(links) == 0 && rp.Link != "" {
		links = append(links, domain.PurchaseLink{
			Name: "Amazon",
			URL:  rp.Link,
			Type: domain.LinkTypeAmazon,
		})
	}

	specs, err := parseOrderedSpecs(rp.Specs)
	if err != nil {
		// A malformed specs object degrades per-item, not per-file.
		logger.Warn("discarding malformed specs", "product", rp.Name, "error", err)
		specs = nil
	}

	sentiment := ""
	if rp.RedditSentiment != nil {
		sentiment = *rp.RedditSentiment
	}

	image := ""
	if images != nil {
		image = images.Resolve(rp.Image)
	} else {
		image = rp.Image
	}

	return domain.Product{
		Slug:            s,
		Name:            rp.Name,
		Brand:           rp.Brand,
		Category:        categoryID,
		Price:           rp.Price,
		Description:     rp.Description,
		RichDescription: rp.RichDescription,
		Why:             rp.Why,
		WhyPeopleLikeIt: rp.WhyPeopleLikeIt,
		RedditSentiment: sentiment,
		Specs:           specs,
		Image:           image,
		PurchaseLinks:   links,
		Rating:          rp.Rating,
		Featured:        rp.Featured,
	}
}

// parseOrderedSpecs decodes a JSON object into spec entries preserving
// the authored key order, which a map decode would scramble.
func parseOrderedSpecs(raw json.RawMessage) ([]domain.SpecEntry, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("specs must be an object, got %v", tok)
	}

	var specs []domain.SpecEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected specs key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("spec %q: %w", key, err)
		}
		specs = append(specs, domain.SpecEntry{Key: key, Value: value})
	}

	return specs, nil
}
