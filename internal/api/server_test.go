package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saunaguide/saunaguide-server/internal/brands"
	"github.com/saunaguide/saunaguide-server/internal/catalog"
	"github.com/saunaguide/saunaguide-server/internal/directory"
	"github.com/saunaguide/saunaguide-server/internal/guides"
	"github.com/saunaguide/saunaguide-server/internal/search"
	"github.com/saunaguide/saunaguide-server/internal/sitemap"
	"github.com/saunaguide/saunaguide-server/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	gear := filepath.Join(dir, "gear-merged.json")
	require.NoError(t, os.WriteFile(gear, []byte(`{
		"categories": [
			{"id": "buckets", "name": "Buckets", "products": [
				{"slug": "kolo-bucket", "name": "KOLO Bucket", "brand": "KOLO", "price": "$189",
				 "description": "Handmade cedar bucket.", "why": "Lasts for decades.",
				 "purchaseLinks": [{"name": "KOLO", "url": "https://kolo.fi", "type": "manufacturer"}]},
				{"slug": "plain-bucket", "name": "Plain Bucket", "brand": "Generic", "price": "$29",
				 "description": "A bucket.", "why": "Cheap.", "purchaseLinks": []}
			]},
			{"id": "hats", "name": "Hats", "products": [
				{"slug": "sauna-hat", "name": "Sauna Hat", "brand": "By Itu", "price": "$45",
				 "description": "Wool felt hat.", "why": "Keeps your head cool.", "purchaseLinks": []}
			]}
		]
	}`), 0o644))

	manufacturers := filepath.Join(dir, "manufacturers.json")
	require.NoError(t, os.WriteFile(manufacturers, []byte(`{"manufacturers": [
		{"name": "Harvia", "country": "Finland", "website": "https://harvia.com",
		 "type": "traditional", "products": ["heaters", "stoves"], "market": "global"},
		{"name": "HUUM", "country": "Estonia", "website": "https://huum.eu",
		 "type": "modern", "products": ["heaters"], "market": "global"}
	]}`), 0o644))

	saunas := filepath.Join(dir, "saunas.json")
	require.NoError(t, os.WriteFile(saunas, []byte(`{"saunas": [
		{"id": "loyly-helsinki", "name": "Löyly", "location": {"city": "Helsinki", "country": "Finland"},
		 "type": "public", "features": ["waterfront", "smoke sauna"], "priceRange": "€€",
		 "description": "Waterfront public sauna in Helsinki."},
		{"id": "aire-copenhagen", "name": "Aire", "location": {"city": "Copenhagen", "country": "Denmark"},
		 "type": "spa", "features": [], "priceRange": "€€€", "description": "Urban spa."}
	]}`), 0o644))

	guidesDir := filepath.Join(dir, "guides")
	require.NoError(t, os.Mkdir(guidesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(guidesDir, "sauna-temperature.mdx"),
		[]byte("---\ntitle: Sauna Temperature Guide\ndescription: How hot is right.\n---\n\nBody.\n"), 0o644))

	st := store.New(store.Paths{
		Gear:          gear,
		Manufacturers: manufacturers,
		Saunas:        saunas,
		GuidesDir:     guidesDir,
	}, nil, slog.New(slog.DiscardHandler))
	require.NoError(t, st.Load())

	idx, err := search.NewIndex(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, idx.Replace(st.Documents()))
	t.Cleanup(func() { _ = idx.Close() })

	builder := sitemap.NewBuilder("https://saunaguide.example", sitemap.Sources{
		Catalog: func() (*catalog.Catalog, error) { return st.Catalog(), nil },
		Saunas:  func() (*directory.Directory, error) { return st.Saunas(), nil },
		Brands:  func() (*brands.Directory, error) { return st.Brands(), nil },
		Guides:  func() (*guides.Library, error) { return st.Guides(), nil },
	}, slog.New(slog.DiscardHandler))

	return NewServer(st, idx, builder, slog.New(slog.DiscardHandler))
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
}

func TestListProducts(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/products")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 3, body["total"])
}

func TestListProductsByCategory(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/products?category=buckets")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 2, body["total"])
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/products/kolo-bucket")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "KOLO Bucket", body["name"])
	assert.Equal(t, "buckets", body["category"])
}

func TestGetProductNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/products/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Contains(t, body["message"], "nope")
}

func TestRelatedProducts(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/products/kolo-bucket/related")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	products, ok := body["products"].([]any)
	require.True(t, ok)

	for _, p := range products {
		product := p.(map[string]any)
		assert.NotEqual(t, "kolo-bucket", product["slug"], "related set must exclude the product itself")
	}
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/categories")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	categories, ok := body["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 2)
	first := categories[0].(map[string]any)
	assert.Equal(t, "buckets", first["id"])
}

func TestGetCategoryNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/gear/categories/tents")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBrands(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/brands")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 2, body["total"])
}

func TestGetBrand(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/brands/harvia")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Harvia", body["name"])
	assert.Equal(t, "Finland", body["country"])
}

func TestGetBrandNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/brands/unknown-brand")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSaunasByCountry(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/saunas?country=finland")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["total"])
	saunas := body["saunas"].([]any)
	sauna := saunas[0].(map[string]any)
	assert.Equal(t, "loyly-helsinki", sauna["id"])
}

func TestGetSauna(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/saunas/loyly-helsinki")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Löyly", body["name"])
}

func TestListGuides(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/guides")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	guideList, ok := body["guides"].([]any)
	require.True(t, ok)
	require.Len(t, guideList, 1)
	guide := guideList[0].(map[string]any)
	assert.Equal(t, "sauna-temperature", guide["slug"])
	assert.Equal(t, "Sauna Temperature Guide", guide["title"])
}

func TestGetGuideNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/guides/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/search?q=bucket")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	hits, ok := body["hits"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, hits)

	slugs := make([]string, 0, len(hits))
	for _, h := range hits {
		hit := h.(map[string]any)
		slugs = append(slugs, fmt.Sprintf("%v", hit["slug"]))
	}
	assert.Contains(t, slugs, "kolo-bucket")
}

func TestSearchTypeFilterEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/search?q=helsinki&types=sauna")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	hits := body["hits"].([]any)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.Equal(t, "sauna", h.(map[string]any)["type"])
	}
}

func TestSearchMissingQuery(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/v1/search")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSitemap(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))

	xml := rec.Body.String()
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "https://saunaguide.example/gear/kolo-bucket")
	assert.Contains(t, xml, "https://saunaguide.example/saunas/loyly-helsinki")
	assert.Contains(t, xml, "https://saunaguide.example/guides/sauna-temperature")
	assert.Contains(t, xml, "https://saunaguide.example/brands/harvia")
}
