package catalog

import (
	"sort"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

// Default result sizes for the curated queries.
const (
	DefaultRelatedLimit  = 3
	DefaultFeaturedLimit = 6
)

// Catalog is the normalized, immutable product collection. It is built
// once by Load and shared read-only; reloads swap the whole value.
type Catalog struct {
	lastUpdated string
	categories  []domain.Category
	products    []domain.Product // flattened in category order
	bySlug      map[string]int   // slug → index into products
}

// LastUpdated returns the ISO date stamped by the last migration run,
// or "" if the file has never been migrated.
func (c *Catalog) LastUpdated() string {
	return c.lastUpdated
}

// AllProducts returns every product across all categories, each tagged
// with its category id, in stable authored order.
func (c *Catalog) AllProducts() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductBySlug returns the first product with the given slug.
func (c *Catalog) ProductBySlug(slug string) (domain.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ProductsByCategory returns the category's products in authored order.
func (c *Catalog) ProductsByCategory(categoryID string) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns all categories with their normalized products.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryByID returns the category with the given id.
func (c *Catalog) CategoryByID(id string) (domain.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return domain.Category{}, false
}

// RelatedProducts returns up to limit same-category products, excluding
// the product itself, in authored order. limit <= 0 uses the default.
func (c *Catalog) RelatedProducts(p domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	var out []domain.Product
	for _, other := range c.ProductsByCategory(p.Category) {
		if other.Slug == p.Slug {
			continue
		}
		out = append(out, other)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FeaturedProducts returns up to limit curated products: every product
// flagged featured in authored order, then, if slots remain, the
// highest-rated unflagged products. Unrated products never fill slots.
// limit <= 0 uses the default.
func (c *Catalog) FeaturedProducts(limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	var featured []domain.Product
	for _, p := range c.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if len(featured) >= limit {
		return featured[:limit]
	}

	var fill []domain.Product
	for _, p := range c.products {
		if !p.Featured && p.Rated() {
			fill = append(fill, p)
		}
	}
	// Stable: rating ties keep authored order.
	sort.SliceStable(fill, func(i, j int) bool {
		return fill[i].Rating > fill[j].Rating
	})

	out := append(featured, fill...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
