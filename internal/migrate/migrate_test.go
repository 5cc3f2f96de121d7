package migrate

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyCatalog = `{
  "lastUpdated": "2024-06-01",
  "totalProducts": 4,
  "categories": [
    {
      "id": "buckets",
      "name": "Buckets & Ladles",
      "products": [
        {
          "name": "KOLO Bucket and Ladle Set",
          "brand": "KOLO",
          "price": "$189",
          "link": "https://amazon.com/dp/B0EXAMPLE",
          "specs": {
            "Capacity": "7L",
            "Material": "Pine",
            "Origin": "Finland"
          }
        },
        {
          "name": "Sauna Hat",
          "brand": "by itu",
          "price": "$39"
        },
        {
          "name": "Sauna Hat",
          "brand": "Generic",
          "price": "$12"
        }
      ]
    },
    {
      "id": "accessories",
      "name": "Accessories",
      "products": [
        {
          "name": "Rento Thermometer",
          "slug": "rento-thermometer-custom",
          "brand": "Rento",
          "price": "$45",
          "purchaseLinks": [
            {"name": "Rento", "url": "https://rento.fi/thermo", "type": "manufacturer"}
          ]
        }
      ]
    }
  ]
}`

func newTestMigrator() *Migrator {
	m := New(slog.New(slog.DiscardHandler))
	m.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return m
}

func migrateFixture(t *testing.T, content string) (string, Summary) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gear-merged.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	summary, err := newTestMigrator().Run(path)
	require.NoError(t, err)
	return path, summary
}

func TestRun(t *testing.T) {
	path, summary := migrateFixture(t, legacyCatalog)

	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 3, summary.SlugsAdded)
	assert.Equal(t, 1, summary.LinksConverted)
	assert.Equal(t, 4, summary.UniqueSlugs)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// Legacy link folded into an Amazon purchase link, link removed.
	assert.NotContains(t, text, `"link"`)
	assert.Contains(t, text, `"url": "https://amazon.com/dp/B0EXAMPLE"`)
	assert.Contains(t, text, `"type": "amazon"`)

	// Slug collision gets a numeric suffix.
	assert.Contains(t, text, `"slug": "sauna-hat"`)
	assert.Contains(t, text, `"slug": "sauna-hat-1"`)

	// Pre-existing slug untouched.
	assert.Contains(t, text, `"slug": "rento-thermometer-custom"`)

	// Products without purchaseLinks get an empty array.
	var parsed struct {
		LastUpdated string `json:"lastUpdated"`
		Categories  []struct {
			Products []struct {
				Slug          string            `json:"slug"`
				PurchaseLinks []json.RawMessage `json:"purchaseLinks"`
			} `json:"products"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "2026-03-15", parsed.LastUpdated)
	for _, cat := range parsed.Categories {
		for _, p := range cat.Products {
			assert.NotNil(t, p.PurchaseLinks, "product %s missing purchaseLinks", p.Slug)
		}
	}
}

func TestRunPreservesKeyOrder(t *testing.T) {
	path, _ := migrateFixture(t, legacyCatalog)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// Authored spec order survives the rewrite.
	capacity := strings.Index(text, `"Capacity"`)
	material := strings.Index(text, `"Material"`)
	origin := strings.Index(text, `"Origin"`)
	require.Positive(t, capacity)
	assert.Less(t, capacity, material)
	assert.Less(t, material, origin)
}

func TestRunIdempotent(t *testing.T) {
	path, _ := migrateFixture(t, legacyCatalog)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = newTestMigrator().Run(path)
	require.NoError(t, err)

	second, err := os.ReadFile(path)
	require.NoError(t, err)

	// Same stamped date in the test clock, so the files are identical.
	assert.Equal(t, string(first), string(second))
}

func TestRunUnderivableSlug(t *testing.T) {
	path, summary := migrateFixture(t, `{
  "categories": [
    {"id": "misc", "name": "Misc", "products": [
      {"name": "???", "brand": "Generic", "price": "$5"}
    ]}
  ]
}`)

	assert.Equal(t, 1, summary.TotalProducts)
	assert.Zero(t, summary.SlugsAdded)

	// Product left without a slug for the validator to flag.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"slug"`)
}

func TestRunMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gear-merged.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": "nope"}`), 0o644))

	_, err := newTestMigrator().Run(path)
	assert.Error(t, err)

	// File untouched on failure.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, `{"categories": "nope"}`, string(data))
}

func TestRunMissingFile(t *testing.T) {
	_, err := newTestMigrator().Run(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
