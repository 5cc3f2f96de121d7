// Package domain contains the core catalog entities for the sauna.guide directory.
package domain

// LinkType classifies the source of an outbound purchase link.
type LinkType string

const (
	LinkTypeAmazon       LinkType = "amazon"
	LinkTypeManufacturer LinkType = "manufacturer"
	LinkTypeRetailer     LinkType = "retailer"
)

// Valid reports whether the link type is a recognized value.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeAmazon, LinkTypeManufacturer, LinkTypeRetailer:
		return true
	}
	return false
}

// PurchaseLink is an outbound commerce URL attached to a product.
type PurchaseLink struct {
	Name string   `json:"name"`
	URL  string   `json:"url"`
	Type LinkType `json:"type"`
}

// SpecEntry is one key/value pair of a product's spec table.
// Specs are an ordered list, not a map, so the authored order survives.
type SpecEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Product is a normalized gear catalog entry.
// Optional enrichment fields are empty strings / nil / zero when absent;
// the normalizer is the only place raw JSON becomes a Product.
type Product struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Category        string `json:"category"` // Category.ID this product belongs to
	Price           string `json:"price"`    // free text, may be a range like "$50-100"
	Description     string `json:"description"`
	RichDescription string `json:"richDescription,omitempty"`
	Why             string `json:"why"`
	WhyPeopleLikeIt string `json:"whyPeopleLikeIt,omitempty"`
	RedditSentiment string `json:"redditSentiment,omitempty"`

	Specs []SpecEntry `json:"specs,omitempty"`

	// Image is the resolved image reference: an absolute URL, a
	// site-relative path, or empty when nothing resolved on disk.
	Image string `json:"image,omitempty"`

	PurchaseLinks []PurchaseLink `json:"purchaseLinks"`

	Rating   float64 `json:"rating,omitempty"` // 1-5, 0 means unrated
	Featured bool    `json:"featured,omitempty"`
}

// Rated reports whether the product carries a rating.
func (p *Product) Rated() bool {
	return p.Rating > 0
}

// Category is a named, ordered group of products.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
}
