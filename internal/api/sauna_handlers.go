package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/saunaguide/saunaguide-server/internal/domain"
	domainerrors "github.com/saunaguide/saunaguide-server/internal/errors"
)

func (s *Server) registerSaunaRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-saunas",
		Method:      http.MethodGet,
		Path:        "/api/v1/saunas",
		Summary:     "List saunas",
		Description: "Directory listings in authored order, optionally filtered by type or country",
		Tags:        []string{"Saunas"},
	}, s.handleListSaunas)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-sauna",
		Method:      http.MethodGet,
		Path:        "/api/v1/saunas/{id}",
		Summary:     "Get a sauna",
		Tags:        []string{"Saunas"},
	}, s.handleGetSauna)
}

// === DTOs ===

// ListSaunasInput filters the sauna listing.
type ListSaunasInput struct {
	Type    string `query:"type" doc:"Restrict to one venue type (public, private, hotel, spa)"`
	Country string `query:"country" doc:"Restrict to one country, case-insensitive"`
}

// SaunaListResponse is a list of saunas.
type SaunaListResponse struct {
	Saunas []domain.Sauna `json:"saunas" doc:"Saunas in authored order"`
	Total  int            `json:"total" doc:"Number of saunas returned"`
}

// SaunaListOutput wraps the sauna list for huma.
type SaunaListOutput struct {
	Body SaunaListResponse
}

// SaunaInput addresses one sauna.
type SaunaInput struct {
	ID string `path:"id" maxLength:"100" doc:"Sauna id"`
}

// SaunaOutput wraps one sauna.
type SaunaOutput struct {
	Body domain.Sauna
}

// === Handlers ===

func (s *Server) handleListSaunas(_ context.Context, input *ListSaunasInput) (*SaunaListOutput, error) {
	dir := s.store.Saunas()

	var saunas []domain.Sauna
	switch {
	case input.Type != "":
		saunas = dir.ByType(domain.SaunaType(input.Type))
	case input.Country != "":
		saunas = dir.ByCountry(input.Country)
	default:
		saunas = dir.All()
	}

	out := &SaunaListOutput{}
	out.Body.Saunas = saunas
	out.Body.Total = len(saunas)
	return out, nil
}

func (s *Server) handleGetSauna(_ context.Context, input *SaunaInput) (*SaunaOutput, error) {
	sauna, ok := s.store.Saunas().ByID(input.ID)
	if !ok {
		return nil, domainerrors.NotFoundf("no sauna with id %q", input.ID)
	}
	return &SaunaOutput{Body: sauna}, nil
}
