package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gear-merged.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidCatalog(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "kolo-bucket", "name": "KOLO Bucket", "brand": "KOLO",
				 "price": "$189", "description": "Handmade pine bucket.",
				 "why": "Lasts decades.", "image": "https://cdn.example.com/kolo.png",
				 "purchaseLinks": [{"name": "Amazon", "url": "https://amazon.com/dp/B0X", "type": "amazon"}]}
			]}
		]
	}`)

	report, err := NewGearChecker("").Run(path)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 1, report.Categories)
	assert.Equal(t, 1, report.Products)
}

func TestRunMissingBrandIsError(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "kolo-bucket", "name": "KOLO Bucket",
				 "price": "$189", "description": "Handmade pine bucket.",
				 "why": "Lasts decades.", "image": "https://cdn.example.com/kolo.png",
				 "purchaseLinks": [{"name": "Amazon", "url": "https://amazon.com/dp/B0X", "type": "amazon"}]}
			]}
		]
	}`)

	report, err := NewGearChecker("").Run(path)
	require.NoError(t, err)

	assert.False(t, report.OK())
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "[buckets/KOLO Bucket]")
	assert.Contains(t, report.Errors[0], "Missing brand")
}

func TestRunMissingEnrichmentIsWarningOnly(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "plain-ladle", "name": "Plain Ladle", "brand": "Generic",
				 "price": "$15", "description": "A ladle.", "why": "Cheap."}
			]}
		]
	}`)

	report, err := NewGearChecker("").Run(path)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Empty(t, report.Errors)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "No purchase links")
	assert.Contains(t, report.Warnings[1], "No image")
}

func TestRunDuplicateSlugs(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "sauna-hat", "name": "Sauna Hat A", "brand": "by itu",
				 "price": "$39", "description": "Wool hat.", "why": "Protects ears.",
				 "image": "x.png", "purchaseLinks": [{"name": "itu", "url": "https://itu.fi", "type": "manufacturer"}]},
				{"slug": "sauna-hat", "name": "Sauna Hat B", "brand": "Generic",
				 "price": "$12", "description": "Felt hat.", "why": "Budget pick.",
				 "image": "y.png", "purchaseLinks": [{"name": "Amazon", "url": "https://amazon.com/dp/B1", "type": "amazon"}]}
			]}
		]
	}`)

	report, err := NewGearChecker("").Run(path)
	require.NoError(t, err)

	assert.False(t, report.OK())
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "[buckets/Sauna Hat B] Duplicate slug: sauna-hat")
	assert.Equal(t, 1, report.Products)
}

func TestRunBadPurchaseLink(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "kolo-bucket", "name": "KOLO Bucket", "brand": "KOLO",
				 "price": "$189", "description": "Handmade pine bucket.",
				 "why": "Lasts decades.", "image": "x.png",
				 "purchaseLinks": [{"name": "", "url": "https://example.com", "type": "ebay"}]}
			]}
		]
	}`)

	report, err := NewGearChecker("").Run(path)
	require.NoError(t, err)

	assert.False(t, report.OK())
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "Purchase link 0: name is required")
	assert.Contains(t, report.Errors[1], "Purchase link 0: type must be one of: amazon manufacturer retailer")
}

func TestRunImageExistenceCheck(t *testing.T) {
	publicDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(publicDir, "images", "gear"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "images", "gear", "present.png"), []byte("png"), 0o644))

	path := writeCatalog(t, `{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "a", "name": "A", "brand": "B", "price": "$1",
				 "description": "d", "why": "w", "image": "/images/gear/present.png",
				 "purchaseLinks": [{"name": "Amazon", "url": "https://amazon.com", "type": "amazon"}]},
				{"slug": "b", "name": "B", "brand": "B", "price": "$1",
				 "description": "d", "why": "w", "image": "/images/gear/absent.png",
				 "purchaseLinks": [{"name": "Amazon", "url": "https://amazon.com", "type": "amazon"}]}
			]}
		]
	}`)

	report, err := NewGearChecker(publicDir).Run(path)
	require.NoError(t, err)

	assert.True(t, report.OK())
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "Image file not found")
	assert.Contains(t, report.Warnings[0], "absent.png")
}

func TestRunCategoryWithoutProducts(t *testing.T) {
	path := writeCatalog(t, `{"categories": [{"id": "empty", "name": "Empty"}]}`)

	report, err := NewGearChecker("").Run(path)
	require.NoError(t, err)

	assert.False(t, report.OK())
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Category empty has no products array")
}

func TestRunMalformedFile(t *testing.T) {
	path := writeCatalog(t, `{"categories": [`)

	_, err := NewGearChecker("").Run(path)
	assert.Error(t, err)
}
