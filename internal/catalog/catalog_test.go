package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

const testGearJSON = `{
  "lastUpdated": "2025-11-02",
  "totalProducts": 5,
  "categories": [
    {
      "id": "buckets-ladles",
      "name": "Buckets & Ladles",
      "description": "The essentials for löyly.",
      "products": [
        {
          "name": "KOLO Bucket and Ladle Set",
          "brand": "KOLO",
          "price": "$150-200",
          "description": "Hand-made aspen bucket with a brass-banded ladle.",
          "why": "The reference pick for purists.",
          "specs": {"Material": "Aspen", "Volume": "5L", "Origin": "Finland"},
          "link": "https://amazon.com/dp/B0KOLO",
          "rating": 4.8,
          "featured": true
        },
        {
          "slug": "rento-bucket",
          "name": "Rento Sauna Bucket",
          "brand": "Rento",
          "price": "$40",
          "description": "Lightweight pigmented bucket.",
          "why": "Affordable and colorfast.",
          "purchaseLinks": [
            {"name": "Rento Store", "url": "https://rento.fi/bucket", "type": "manufacturer"}
          ],
          "rating": 4.2
        },
        {
          "name": "Plain Ladle",
          "brand": "Generic",
          "price": "$15",
          "description": "A ladle.",
          "why": "It scoops."
        }
      ]
    },
    {
      "id": "sauna-hats",
      "name": "Sauna Hats",
      "description": "Protect your head from the heat.",
      "products": [
        {
          "name": "by itu Sauna Hat",
          "brand": "by itu",
          "price": "$35",
          "description": "Hand-felted wool hat.",
          "why": "Keeps your head cool at the top bench.",
          "redditSentiment": "Universally liked on r/Sauna.",
          "rating": 4.9,
          "featured": true
        },
        {
          "name": "Budget Felt Hat",
          "brand": "NoName",
          "price": "$12",
          "description": "Basic felt hat.",
          "why": "Cheap way in.",
          "rating": 3.9
        }
      ]
    }
  ]
}`

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "gear-merged.json")
	require.NoError(t, os.WriteFile(path, []byte(testGearJSON), 0644))

	c, err := Load(path, nil, nil)
	require.NoError(t, err)
	return c
}

func TestLoad_MalformedJSONIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gear-merged.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": [`), 0644))

	_, err := Load(path, nil, nil)
	assert.Error(t, err)
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil, nil)
	assert.Error(t, err)
}

func TestLoad_Normalization(t *testing.T) {
	c := loadTestCatalog(t)

	kolo, ok := c.ProductBySlug("kolo-bucket-and-ladle-set")
	require.True(t, ok, "slug should be derived from the name")

	// Legacy link became a single Amazon purchase link.
	require.Len(t, kolo.PurchaseLinks, 1)
	assert.Equal(t, "Amazon", kolo.PurchaseLinks[0].Name)
	assert.Equal(t, "https://amazon.com/dp/B0KOLO", kolo.PurchaseLinks[0].URL)
	assert.Equal(t, domain.LinkTypeAmazon, kolo.PurchaseLinks[0].Type)

	// Specs keep authored order.
	require.Len(t, kolo.Specs, 3)
	assert.Equal(t, "Material", kolo.Specs[0].Key)
	assert.Equal(t, "Volume", kolo.Specs[1].Key)
	assert.Equal(t, "Origin", kolo.Specs[2].Key)

	// Authored slug is kept verbatim.
	rento, ok := c.ProductBySlug("rento-bucket")
	require.True(t, ok)
	assert.Equal(t, domain.LinkTypeManufacturer, rento.PurchaseLinks[0].Type)

	// A product with neither link form gets an empty, non-nil list.
	plain, ok := c.ProductBySlug("plain-ladle")
	require.True(t, ok)
	assert.NotNil(t, plain.PurchaseLinks)
	assert.Empty(t, plain.PurchaseLinks)

	assert.Equal(t, "2025-11-02", c.LastUpdated())
}

func TestAllProducts_TaggedWithCategory(t *testing.T) {
	c := loadTestCatalog(t)

	products := c.AllProducts()
	require.Len(t, products, 5)

	// Flattened in category order, tagged with the owning category id.
	assert.Equal(t, "buckets-ladles", products[0].Category)
	assert.Equal(t, "sauna-hats", products[3].Category)
}

func TestProductBySlug_RoundTrip(t *testing.T) {
	c := loadTestCatalog(t)

	for _, p := range c.AllProducts() {
		got, ok := c.ProductBySlug(p.Slug)
		require.True(t, ok, "slug %q", p.Slug)
		assert.Equal(t, p, got)
	}

	_, ok := c.ProductBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestProductsByCategory(t *testing.T) {
	c := loadTestCatalog(t)

	hats := c.ProductsByCategory("sauna-hats")
	require.Len(t, hats, 2)
	assert.Equal(t, "by-itu-sauna-hat", hats[0].Slug)
	assert.Equal(t, "budget-felt-hat", hats[1].Slug)

	assert.Empty(t, c.ProductsByCategory("no-such-category"))
}

func TestCategoryByID(t *testing.T) {
	c := loadTestCatalog(t)

	cat, ok := c.CategoryByID("buckets-ladles")
	require.True(t, ok)
	assert.Equal(t, "Buckets & Ladles", cat.Name)
	assert.Len(t, cat.Products, 3)

	_, ok = c.CategoryByID("nope")
	assert.False(t, ok)
}

func TestRelatedProducts(t *testing.T) {
	c := loadTestCatalog(t)

	kolo, _ := c.ProductBySlug("kolo-bucket-and-ladle-set")
	related := c.RelatedProducts(kolo, 3)

	require.Len(t, related, 2)
	for _, p := range related {
		assert.NotEqual(t, kolo.Slug, p.Slug, "related must exclude the product itself")
		assert.Equal(t, kolo.Category, p.Category)
	}

	// Limit truncates.
	assert.Len(t, c.RelatedProducts(kolo, 1), 1)
}

func TestFeaturedProducts(t *testing.T) {
	c := loadTestCatalog(t)

	// Two featured products, then rated fill by descending rating.
	got := c.FeaturedProducts(4)
	require.Len(t, got, 4)
	assert.Equal(t, "kolo-bucket-and-ladle-set", got[0].Slug)
	assert.Equal(t, "by-itu-sauna-hat", got[1].Slug)
	assert.Equal(t, "rento-bucket", got[2].Slug)    // 4.2
	assert.Equal(t, "budget-felt-hat", got[3].Slug) // 3.9

	// Unrated products never fill: only 4 eligible products exist.
	assert.Len(t, c.FeaturedProducts(6), 4)

	// When enough products are flagged, every result is featured.
	got = c.FeaturedProducts(2)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, p.Featured)
	}
}
