// Package search provides full-text search over the site's content using
// Bleve: gear products, sauna listings, manufacturers, and guides share one
// unified index with type discrimination.
package search

import (
	"strings"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

// DocType represents the type of document in the unified index.
type DocType string

// Document types for the search index.
const (
	DocTypeGear  DocType = "gear"
	DocTypeSauna DocType = "sauna"
	DocTypeBrand DocType = "brand"
	DocTypeGuide DocType = "guide"
)

// Document is the unified record for the Bleve index. All searchable
// entities are indexed as Documents; optional fields stay empty for
// types they don't apply to.
type Document struct {
	// Identity. ID is "<type>:<slug>" so slugs from different
	// collections never collide in the index.
	ID   string  `json:"id"`
	Slug string  `json:"slug"`
	Type DocType `json:"type"`

	// Primary searchable text. Gear/brand: name, sauna: name, guide: title.
	Name        string `json:"name"`
	Description string `json:"description"`

	// Gear-specific
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`

	// Sauna-specific
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	// Tags: sauna features, guide tags, manufacturer product lines.
	Tags []string `json:"tags,omitempty"`

	Rating float64 `json:"rating,omitempty"`
}

// ToMap converts the document to a map with lowercase field names so they
// match the index mapping; Bleve would otherwise index Go field names.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{
		"id":   d.ID,
		"slug": d.Slug,
		"type": string(d.Type),
		"name": d.Name,
	}

	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Brand != "" {
		m["brand"] = d.Brand
	}
	if d.Category != "" {
		m["category"] = d.Category
	}
	if d.City != "" {
		m["city"] = d.City
	}
	if d.Country != "" {
		m["country"] = d.Country
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.Rating > 0 {
		m["rating"] = d.Rating
	}

	return m
}

// ProductDocument converts a gear product to its index record.
func ProductDocument(p domain.Product) *Document {
	return &Document{
		ID:          "gear:" + p.Slug,
		Slug:        p.Slug,
		Type:        DocTypeGear,
		Name:        p.Name,
		Description: strings.TrimSpace(p.Description + " " + p.Why),
		Brand:       p.Brand,
		Category:    p.Category,
		Rating:      p.Rating,
	}
}

// SaunaDocument converts a sauna listing to its index record.
func SaunaDocument(s domain.Sauna) *Document {
	return &Document{
		ID:          "sauna:" + s.ID,
		Slug:        s.ID,
		Type:        DocTypeSauna,
		Name:        s.Name,
		Description: s.Description,
		City:        s.Location.City,
		Country:     s.Location.Country,
		Tags:        s.Features,
		Rating:      s.Rating,
	}
}

// BrandDocument converts a manufacturer to its index record.
func BrandDocument(m domain.Manufacturer) *Document {
	return &Document{
		ID:          "brand:" + m.Slug,
		Slug:        m.Slug,
		Type:        DocTypeBrand,
		Name:        m.Name,
		Description: m.UniqueAngle,
		Country:     m.Country,
		Tags:        m.Products,
	}
}

// GuideDocument converts a guide to its index record.
func GuideDocument(g domain.Guide) *Document {
	return &Document{
		ID:          "guide:" + g.Slug,
		Slug:        g.Slug,
		Type:        DocTypeGuide,
		Name:        g.Title,
		Description: g.Description,
		Tags:        g.Tags,
	}
}
