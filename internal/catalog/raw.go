// Package catalog loads the gear catalog from its static JSON file and
// exposes read-only queries over the normalized collection.
//
// The raw on-disk shape (optional fields, the legacy single-link form)
// never leaves this package: Load is the single boundary where a
// possibly-missing JSON field becomes a typed value.
package catalog

import "encoding/json"

// rawFile is the top-level shape of gear-merged.json.
type rawFile struct {
	LastUpdated   string        `json:"lastUpdated"`
	TotalProducts int           `json:"totalProducts"`
	Categories    []rawCategory `json:"categories"`
}

// rawCategory is one category as authored.
type rawCategory struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Products    []rawProduct `json:"products"`
}

// rawProduct is one product as authored. Every enrichment field is
// optional, and records migrated from the old format may still carry
// the legacy single `link` field instead of `purchaseLinks`.
type rawProduct struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	Price           string  `json:"price"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription"`
	Why             string  `json:"why"`
	WhyPeopleLikeIt string  `json:"whyPeopleLikeIt"`
	RedditSentiment *string `json:"redditSentiment"`

	// Specs is kept raw so the authored key order survives; JSON
	// objects decode into Go maps in random order.
	Specs json.RawMessage `json:"specs"`

	Image string `json:"image"`

	Link          string            `json:"link"` // legacy single Amazon link
	PurchaseLinks []rawPurchaseLink `json:"purchaseLinks"`

	Rating   float64 `json:"rating"`
	Featured bool    `json:"featured"`
}

// rawPurchaseLink mirrors domain.PurchaseLink but without the closed
// enum, so unknown types surface in validation instead of failing the load.
type rawPurchaseLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
