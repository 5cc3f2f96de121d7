package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query string   // User's search query
	Types []string // Document types to include (empty = all)

	// Filters
	Category string // Gear category id, exact match
	Country  string // Sauna/brand country, exact match

	// Pagination
	Limit  int
	Offset int

	// Options
	IncludeFacets bool // Include type/country facet counts
	Highlight     bool // Include match highlighting
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit:         20,
		Offset:        0,
		IncludeFacets: true,
		Highlight:     true,
	}
}

// Result represents the search results.
type Result struct {
	Query  string  `json:"query"`
	Total  uint64  `json:"total"`
	TookMs int64   `json:"took_ms"`
	Hits   []Hit   `json:"hits"`
	Facets *Facets `json:"facets,omitempty"`
}

// Hit represents a single search result.
type Hit struct {
	Slug       string            `json:"slug"`
	Type       DocType           `json:"type"`
	Score      float64           `json:"score"`
	Name       string            `json:"name"`
	Brand      string            `json:"brand,omitempty"`
	Category   string            `json:"category,omitempty"`
	City       string            `json:"city,omitempty"`
	Country    string            `json:"country,omitempty"`
	Rating     float64           `json:"rating,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Facets contains facet counts.
type Facets struct {
	Types     []FacetCount `json:"types,omitempty"`
	Countries []FacetCount `json:"countries,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a search query.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		params.Limit = 20
	}

	searchQuery := buildSearchQuery(params)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score"})

	if params.IncludeFacets {
		searchRequest.AddFacet("type", bleve.NewFacetRequest("type", 10))
		searchRequest.AddFacet("country", bleve.NewFacetRequest("country", 20))
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("name")
		searchRequest.Highlight.AddField("brand")
		searchRequest.Highlight.AddField("city")
	}

	searchRequest.Fields = []string{
		"slug", "type", "name", "brand", "category", "city", "country", "rating",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{Score: hit.Score}

		if v, ok := hit.Fields["slug"].(string); ok {
			h.Slug = v
		}
		if v, ok := hit.Fields["type"].(string); ok {
			h.Type = DocType(v)
		}
		if v, ok := hit.Fields["name"].(string); ok {
			h.Name = v
		}
		if v, ok := hit.Fields["brand"].(string); ok {
			h.Brand = v
		}
		if v, ok := hit.Fields["category"].(string); ok {
			h.Category = v
		}
		if v, ok := hit.Fields["city"].(string); ok {
			h.City = v
		}
		if v, ok := hit.Fields["country"].(string); ok {
			h.Country = v
		}
		if v, ok := hit.Fields["rating"].(float64); ok {
			h.Rating = v
		}

		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, h)
	}

	if params.IncludeFacets {
		result.Facets = extractFacets(searchResult)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params: a boosted
// disjunction over the text fields, intersected with the exact filters.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	if params.Query != "" {
		textQueries := []query.Query{}

		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		brandMatch := bleve.NewMatchQuery(params.Query)
		brandMatch.SetField("brand")
		brandMatch.SetBoost(2.0)
		textQueries = append(textQueries, brandMatch)

		cityMatch := bleve.NewMatchQuery(params.Query)
		cityMatch.SetField("city")
		cityMatch.SetBoost(2.0)
		textQueries = append(textQueries, cityMatch)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		textQueries = append(textQueries, descMatch)

		// Fuzzy matching for typo tolerance on name
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars)
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if len(params.Types) > 0 {
		typeQueries := make([]query.Query, len(params.Types))
		for i, t := range params.Types {
			tq := bleve.NewTermQuery(t)
			tq.SetField("type")
			typeQueries[i] = tq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(typeQueries...))
	}

	if params.Category != "" {
		cq := bleve.NewTermQuery(params.Category)
		cq.SetField("category")
		queries = append(queries, cq)
	}

	if params.Country != "" {
		cq := bleve.NewTermQuery(params.Country)
		cq.SetField("country")
		queries = append(queries, cq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// extractFacets converts Bleve facets to our format.
func extractFacets(result *bleve.SearchResult) *Facets {
	facets := &Facets{}

	if typeFacet, ok := result.Facets["type"]; ok {
		for _, term := range typeFacet.Terms.Terms() {
			facets.Types = append(facets.Types, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	if countryFacet, ok := result.Facets["country"]; ok {
		for _, term := range countryFacet.Terms.Terms() {
			facets.Countries = append(facets.Countries, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	return facets
}
