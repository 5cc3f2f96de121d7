package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/saunaguide/saunaguide-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search the site",
		Description: "Federated search across gear products, saunas, brands, and guides",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains parameters for searching the site.
type SearchInput struct {
	Query    string `query:"q" required:"true" minLength:"1" maxLength:"200" doc:"Search query"`
	Types    string `query:"types" maxLength:"100" required:"false" doc:"Comma-separated types to search (gear,sauna,brand,guide). Omit for all."`
	Category string `query:"category" maxLength:"100" required:"false" doc:"Gear category id filter"`
	Country  string `query:"country" maxLength:"100" required:"false" doc:"Country filter for saunas and brands"`
	Limit    int    `query:"limit" minimum:"1" maximum:"100" required:"false" doc:"Max results (default 20)"`
	Offset   int    `query:"offset" minimum:"0" required:"false" doc:"Pagination offset (default 0)"`
	Facets   bool   `query:"facets" required:"false" doc:"Include facets in response"`
}

// SearchHitResult contains a single search result.
type SearchHitResult struct {
	Slug       string            `json:"slug" doc:"Entity slug"`
	Type       string            `json:"type" doc:"Type: gear, sauna, brand, or guide"`
	Score      float64           `json:"score" doc:"Search relevance score"`
	Name       string            `json:"name" doc:"Display name (title for guides)"`
	Brand      string            `json:"brand,omitempty" doc:"Brand name (for gear)"`
	Category   string            `json:"category,omitempty" doc:"Category id (for gear)"`
	City       string            `json:"city,omitempty" doc:"City (for saunas)"`
	Country    string            `json:"country,omitempty" doc:"Country (for saunas and brands)"`
	Rating     float64           `json:"rating,omitempty" doc:"Rating where authored"`
	Highlights map[string]string `json:"highlights,omitempty" doc:"Highlighted matches"`
}

// SearchFacets contains facet counts for filtering.
type SearchFacets struct {
	Types     []FacetCount `json:"types,omitempty" doc:"Type facets"`
	Countries []FacetCount `json:"countries,omitempty" doc:"Country facets"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value" doc:"Facet value"`
	Count int    `json:"count" doc:"Number of matches"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Query  string            `json:"query" doc:"Original search query"`
	Total  int64             `json:"total" doc:"Total matches"`
	TookMs int64             `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHitResult `json:"hits" doc:"Search results"`
	Facets *SearchFacets     `json:"facets,omitempty" doc:"Facet counts for filtering"`
}

// SearchOutput wraps the search response for huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	params := search.Params{
		Query:         input.Query,
		Category:      input.Category,
		Country:       input.Country,
		Limit:         limit,
		Offset:        input.Offset,
		IncludeFacets: input.Facets,
		Highlight:     true,
	}

	// Comma-separated types to slice, unknown values dropped.
	if input.Types != "" {
		for _, t := range strings.Split(input.Types, ",") {
			switch dt := search.DocType(strings.TrimSpace(t)); dt {
			case search.DocTypeGear, search.DocTypeSauna, search.DocTypeBrand, search.DocTypeGuide:
				params.Types = append(params.Types, string(dt))
			}
		}
	}

	result, err := s.search.Search(ctx, params)
	if err != nil {
		s.logger.Error("Search failed", "query", input.Query, "error", err)
		return nil, err
	}

	resp := SearchResponse{
		Query:  result.Query,
		Total:  int64(result.Total),
		TookMs: result.TookMs,
		Hits:   make([]SearchHitResult, 0, len(result.Hits)),
	}

	for _, hit := range result.Hits {
		resp.Hits = append(resp.Hits, SearchHitResult{
			Slug:       hit.Slug,
			Type:       string(hit.Type),
			Score:      hit.Score,
			Name:       hit.Name,
			Brand:      hit.Brand,
			Category:   hit.Category,
			City:       hit.City,
			Country:    hit.Country,
			Rating:     hit.Rating,
			Highlights: hit.Highlights,
		})
	}

	if result.Facets != nil {
		facets := &SearchFacets{}
		for _, f := range result.Facets.Types {
			facets.Types = append(facets.Types, FacetCount{Value: f.Value, Count: f.Count})
		}
		for _, f := range result.Facets.Countries {
			facets.Countries = append(facets.Countries, FacetCount{Value: f.Value, Count: f.Count})
		}
		resp.Facets = facets
	}

	return &SearchOutput{Body: resp}, nil
}
