// Package brands loads the manufacturer directory from its static JSON
// file and exposes read-only queries over the normalized collection.
package brands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/saunaguide/saunaguide-server/internal/domain"
	"github.com/saunaguide/saunaguide-server/internal/slug"
)

// brandLogos maps a slugified brand name to its logo asset path. Logos
// are curated by hand; a brand without an entry simply has no logo.
var brandLogos = map[string]string{
	"harvia":               "/images/brands/harvia.svg",
	"huum":                 "/images/brands/huum.png",
	"tyl":                  "/images/brands/tylo.webp",
	"narvi":                "/images/brands/narvi.svg",
	"kirami":               "/images/brands/kirami.png",
	"almost-heaven-saunas": "/images/brands/almost-heaven.png",
	"barrel-sauna-co":      "/images/brands/barrel-sauna-co.png",
	"finnleo":              "/images/brands/finnleo.svg",
	"clearlight-saunas":    "/images/brands/clearlight.png",
	"sunlighten":           "/images/brands/sunlighten.svg",
	"saunaspace":           "/images/brands/saunaspace.png",
	"saunum":               "/images/brands/saunum.png",
	"klafs":                "/images/brands/klafs.png",
	"polar-saunas":         "/images/brands/polar-saunas.png",
	"durasage":             "/images/brands/durasage.png",
	"health-mate":          "/images/brands/health-mate.png",
}

// featuredSlugs is the curated list of notable brands surfaced on the
// home page, in display order.
var featuredSlugs = []string{
	"harvia",
	"sunlighten",
	"clearlight-saunas",
	"almost-heaven-saunas",
	"huum",
	"klafs",
}

// rawFile is the top-level shape of manufacturers.json.
type rawFile struct {
	Manufacturers []rawManufacturer `json:"manufacturers"`
}

type rawManufacturer struct {
	Name                 string                `json:"name"`
	Country              string                `json:"country"`
	Founded              int                   `json:"founded"`
	Website              string                `json:"website"`
	Type                 string                `json:"type"`
	Products             []string              `json:"products"`
	Market               string                `json:"market"`
	Public               bool                  `json:"public"`
	Stock                string                `json:"stock"`
	OwnedBy              string                `json:"owned_by"`
	UniqueAngle          string                `json:"unique_angle"`
	ContentOpportunities []string              `json:"content_opportunities"`
	Social               *domain.SocialHandles `json:"social"`
	PartnershipStatus    string                `json:"partnership_status"`
	Notes                string                `json:"notes"`
}

// Directory is the normalized, immutable manufacturer collection.
type Directory struct {
	manufacturers []domain.Manufacturer
	bySlug        map[string]int
}

// Load parses the manufacturers file. Malformed JSON is fatal, matching
// the catalog loader: there is no runtime fallback for corrupt data.
func Load(path string, logger *slog.Logger) (*Directory, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- data file path comes from config
	if err != nil {
		return nil, fmt.Errorf("read manufacturers: %w", err)
	}

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse manufacturers %s: %w", path, err)
	}

	d := &Directory{
		manufacturers: make([]domain.Manufacturer, 0, len(raw.Manufacturers)),
		bySlug:        make(map[string]int, len(raw.Manufacturers)),
	}

	for _, rm := range raw.Manufacturers {
		s := slug.Make(rm.Name)
		mt := domain.ManufacturerType(rm.Type)
		if !mt.Valid() {
			logger.Warn("unknown manufacturer type", "brand", rm.Name, "type", rm.Type)
		}

		m := domain.Manufacturer{
			Name:                 rm.Name,
			Slug:                 s,
			Country:              rm.Country,
			Founded:              rm.Founded,
			Website:              rm.Website,
			Type:                 mt,
			Products:             rm.Products,
			Market:               rm.Market,
			Public:               rm.Public,
			Stock:                rm.Stock,
			OwnedBy:              rm.OwnedBy,
			UniqueAngle:          rm.UniqueAngle,
			ContentOpportunities: rm.ContentOpportunities,
			Social:               rm.Social,
			PartnershipStatus:    rm.PartnershipStatus,
			Notes:                rm.Notes,
			Logo:                 brandLogos[s],
		}

		if _, seen := d.bySlug[s]; !seen {
			d.bySlug[s] = len(d.manufacturers)
		}
		d.manufacturers = append(d.manufacturers, m)
	}

	logger.Info("manufacturer directory loaded", "path", path, "brands", len(d.manufacturers))

	return d, nil
}

// All returns every manufacturer in authored order.
func (d *Directory) All() []domain.Manufacturer {
	out := make([]domain.Manufacturer, len(d.manufacturers))
	copy(out, d.manufacturers)
	return out
}

// BySlug returns the manufacturer with the given slug.
func (d *Directory) BySlug(slug string) (domain.Manufacturer, bool) {
	i, ok := d.bySlug[slug]
	if !ok {
		return domain.Manufacturer{}, false
	}
	return d.manufacturers[i], true
}

// ByType returns manufacturers of the given type in authored order.
func (d *Directory) ByType(t domain.ManufacturerType) []domain.Manufacturer {
	var out []domain.Manufacturer
	for _, m := range d.manufacturers {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Types returns each manufacturer type present in the directory with
// its brand count and display label, in first-seen order.
func (d *Directory) Types() []domain.TypeCount {
	var order []domain.ManufacturerType
	counts := make(map[domain.ManufacturerType]int)
	for _, m := range d.manufacturers {
		if counts[m.Type] == 0 {
			order = append(order, m.Type)
		}
		counts[m.Type]++
	}

	out := make([]domain.TypeCount, 0, len(order))
	for _, t := range order {
		out = append(out, domain.TypeCount{
			Type:  t,
			Count: counts[t],
			Label: t.Label(),
		})
	}
	return out
}

// Featured returns the curated notable brands in display order,
// skipping any whose slug is not in the loaded directory.
func (d *Directory) Featured() []domain.Manufacturer {
	var out []domain.Manufacturer
	for _, s := range featuredSlugs {
		if m, ok := d.BySlug(s); ok {
			out = append(out, m)
		}
	}
	return out
}
