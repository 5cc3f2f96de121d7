package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/saunaguide/saunaguide-server/internal/domain"
	domainerrors "github.com/saunaguide/saunaguide-server/internal/errors"
)

func (s *Server) registerGearRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-gear-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/gear/products",
		Summary:     "List gear products",
		Description: "All products across categories, optionally filtered by category id",
		Tags:        []string{"Gear"},
	}, s.handleListProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-gear-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/gear/products/{slug}",
		Summary:     "Get a gear product",
		Tags:        []string{"Gear"},
	}, s.handleGetProduct)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-related-gear-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/gear/products/{slug}/related",
		Summary:     "Related gear products",
		Description: "Same-category products excluding the product itself",
		Tags:        []string{"Gear"},
	}, s.handleRelatedProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-featured-gear-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/gear/featured",
		Summary:     "Featured gear products",
		Description: "Curated featured products, filled with top-rated products when the curated set is short",
		Tags:        []string{"Gear"},
	}, s.handleFeaturedProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-gear-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/gear/categories",
		Summary:     "List gear categories",
		Tags:        []string{"Gear"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-gear-category",
		Method:      http.MethodGet,
		Path:        "/api/v1/gear/categories/{id}",
		Summary:     "Get a gear category",
		Tags:        []string{"Gear"},
	}, s.handleGetCategory)
}

// === DTOs ===

// ListProductsInput filters the product listing.
type ListProductsInput struct {
	Category string `query:"category" doc:"Restrict to one category id"`
}

// ProductListResponse is a list of products.
type ProductListResponse struct {
	Products []domain.Product `json:"products" doc:"Products in authored order"`
	Total    int              `json:"total" doc:"Number of products returned"`
}

// ProductListOutput wraps the product list for huma.
type ProductListOutput struct {
	Body ProductListResponse
}

// ProductInput addresses one product.
type ProductInput struct {
	Slug string `path:"slug" maxLength:"100" doc:"Product slug"`
}

// ProductOutput wraps one product.
type ProductOutput struct {
	Body domain.Product
}

// RelatedProductsInput addresses a product's related set.
type RelatedProductsInput struct {
	Slug  string `path:"slug" maxLength:"100" doc:"Product slug"`
	Limit int    `query:"limit" minimum:"1" maximum:"50" required:"false" doc:"Max related products (default 3)"`
}

// FeaturedProductsInput limits the featured set.
type FeaturedProductsInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"50" required:"false" doc:"Max featured products (default 6)"`
}

// CategoryListOutput wraps the category list.
type CategoryListOutput struct {
	Body struct {
		Categories []domain.Category `json:"categories" doc:"Categories in authored order"`
	}
}

// CategoryInput addresses one category.
type CategoryInput struct {
	ID string `path:"id" maxLength:"100" doc:"Category id"`
}

// CategoryOutput wraps one category.
type CategoryOutput struct {
	Body domain.Category
}

// === Handlers ===

func (s *Server) handleListProducts(_ context.Context, input *ListProductsInput) (*ProductListOutput, error) {
	cat := s.store.Catalog()

	var products []domain.Product
	if input.Category != "" {
		products = cat.ProductsByCategory(input.Category)
	} else {
		products = cat.AllProducts()
	}

	out := &ProductListOutput{}
	out.Body.Products = products
	out.Body.Total = len(products)
	return out, nil
}

func (s *Server) handleGetProduct(_ context.Context, input *ProductInput) (*ProductOutput, error) {
	product, ok := s.store.Catalog().ProductBySlug(input.Slug)
	if !ok {
		return nil, domainerrors.NotFoundf("no product with slug %q", input.Slug)
	}
	return &ProductOutput{Body: product}, nil
}

func (s *Server) handleRelatedProducts(_ context.Context, input *RelatedProductsInput) (*ProductListOutput, error) {
	cat := s.store.Catalog()

	product, ok := cat.ProductBySlug(input.Slug)
	if !ok {
		return nil, domainerrors.NotFoundf("no product with slug %q", input.Slug)
	}

	related := cat.RelatedProducts(product, input.Limit)
	out := &ProductListOutput{}
	out.Body.Products = related
	out.Body.Total = len(related)
	return out, nil
}

func (s *Server) handleFeaturedProducts(_ context.Context, input *FeaturedProductsInput) (*ProductListOutput, error) {
	featured := s.store.Catalog().FeaturedProducts(input.Limit)

	out := &ProductListOutput{}
	out.Body.Products = featured
	out.Body.Total = len(featured)
	return out, nil
}

func (s *Server) handleListCategories(_ context.Context, _ *struct{}) (*CategoryListOutput, error) {
	out := &CategoryListOutput{}
	out.Body.Categories = s.store.Catalog().Categories()
	return out, nil
}

func (s *Server) handleGetCategory(_ context.Context, input *CategoryInput) (*CategoryOutput, error) {
	category, ok := s.store.Catalog().CategoryByID(input.ID)
	if !ok {
		return nil, domainerrors.NotFoundf("no category with id %q", input.ID)
	}
	return &CategoryOutput{Body: category}, nil
}
