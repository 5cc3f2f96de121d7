package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/saunaguide/saunaguide-server/internal/domain"
	domainerrors "github.com/saunaguide/saunaguide-server/internal/errors"
)

func (s *Server) registerBrandRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands",
		Summary:     "List manufacturers",
		Description: "All manufacturers in authored order, optionally filtered by type",
		Tags:        []string{"Brands"},
	}, s.handleListBrands)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-featured-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands/featured",
		Summary:     "Featured manufacturers",
		Description: "The curated featured manufacturer set, in curated order",
		Tags:        []string{"Brands"},
	}, s.handleFeaturedBrands)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-brand",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands/{slug}",
		Summary:     "Get a manufacturer",
		Tags:        []string{"Brands"},
	}, s.handleGetBrand)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-brand-types",
		Method:      http.MethodGet,
		Path:        "/api/v1/brand-types",
		Summary:     "List manufacturer types",
		Description: "Distinct manufacturer types with display labels and counts",
		Tags:        []string{"Brands"},
	}, s.handleListBrandTypes)
}

// === DTOs ===

// ListBrandsInput filters the manufacturer listing.
type ListBrandsInput struct {
	Type string `query:"type" doc:"Restrict to one manufacturer type"`
}

// BrandListResponse is a list of manufacturers.
type BrandListResponse struct {
	Manufacturers []domain.Manufacturer `json:"manufacturers" doc:"Manufacturers in authored order"`
	Total         int                   `json:"total" doc:"Number of manufacturers returned"`
}

// BrandListOutput wraps the manufacturer list for huma.
type BrandListOutput struct {
	Body BrandListResponse
}

// BrandInput addresses one manufacturer.
type BrandInput struct {
	Slug string `path:"slug" maxLength:"100" doc:"Manufacturer slug"`
}

// BrandOutput wraps one manufacturer.
type BrandOutput struct {
	Body domain.Manufacturer
}

// BrandTypesOutput wraps the type listing.
type BrandTypesOutput struct {
	Body struct {
		Types []domain.TypeCount `json:"types" doc:"Types in first-seen order with counts"`
	}
}

// === Handlers ===

func (s *Server) handleListBrands(_ context.Context, input *ListBrandsInput) (*BrandListOutput, error) {
	dir := s.store.Brands()

	var manufacturers []domain.Manufacturer
	if input.Type != "" {
		manufacturers = dir.ByType(domain.ManufacturerType(input.Type))
	} else {
		manufacturers = dir.All()
	}

	out := &BrandListOutput{}
	out.Body.Manufacturers = manufacturers
	out.Body.Total = len(manufacturers)
	return out, nil
}

func (s *Server) handleFeaturedBrands(_ context.Context, _ *struct{}) (*BrandListOutput, error) {
	featured := s.store.Brands().Featured()

	out := &BrandListOutput{}
	out.Body.Manufacturers = featured
	out.Body.Total = len(featured)
	return out, nil
}

func (s *Server) handleGetBrand(_ context.Context, input *BrandInput) (*BrandOutput, error) {
	manufacturer, ok := s.store.Brands().BySlug(input.Slug)
	if !ok {
		return nil, domainerrors.NotFoundf("no manufacturer with slug %q", input.Slug)
	}
	return &BrandOutput{Body: manufacturer}, nil
}

func (s *Server) handleListBrandTypes(_ context.Context, _ *struct{}) (*BrandTypesOutput, error) {
	out := &BrandTypesOutput{}
	out.Body.Types = s.store.Brands().Types()
	return out, nil
}
