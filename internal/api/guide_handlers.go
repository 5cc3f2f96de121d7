package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/saunaguide/saunaguide-server/internal/domain"
	domainerrors "github.com/saunaguide/saunaguide-server/internal/errors"
)

func (s *Server) registerGuideRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-guides",
		Method:      http.MethodGet,
		Path:        "/api/v1/guides",
		Summary:     "List guides",
		Description: "All guides, newest first by file modification time",
		Tags:        []string{"Guides"},
	}, s.handleListGuides)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-guide",
		Method:      http.MethodGet,
		Path:        "/api/v1/guides/{slug}",
		Summary:     "Get a guide",
		Tags:        []string{"Guides"},
	}, s.handleGetGuide)
}

// === DTOs ===

// GuideResult is the API shape of one guide.
type GuideResult struct {
	Slug        string    `json:"slug" doc:"Guide slug, from the filename"`
	Title       string    `json:"title" doc:"Display title"`
	Description string    `json:"description,omitempty" doc:"Summary from frontmatter"`
	Date        string    `json:"date,omitempty" doc:"Authored publication date"`
	Author      string    `json:"author,omitempty" doc:"Author from frontmatter"`
	Tags        []string  `json:"tags,omitempty" doc:"Topic tags"`
	ModTime     time.Time `json:"mod_time" doc:"File modification time"`
}

// GuideListOutput wraps the guide list for huma.
type GuideListOutput struct {
	Body struct {
		Guides []GuideResult `json:"guides" doc:"Guides, newest first"`
		Total  int           `json:"total" doc:"Number of guides returned"`
	}
}

// GuideInput addresses one guide.
type GuideInput struct {
	Slug string `path:"slug" maxLength:"100" doc:"Guide slug"`
}

// GuideOutput wraps one guide.
type GuideOutput struct {
	Body GuideResult
}

// === Handlers ===

func (s *Server) handleListGuides(_ context.Context, _ *struct{}) (*GuideListOutput, error) {
	all := s.store.Guides().All()

	out := &GuideListOutput{}
	out.Body.Guides = make([]GuideResult, 0, len(all))
	for _, g := range all {
		out.Body.Guides = append(out.Body.Guides, guideResult(g))
	}
	out.Body.Total = len(all)
	return out, nil
}

func (s *Server) handleGetGuide(_ context.Context, input *GuideInput) (*GuideOutput, error) {
	g, ok := s.store.Guides().BySlug(input.Slug)
	if !ok {
		return nil, domainerrors.NotFoundf("no guide with slug %q", input.Slug)
	}
	return &GuideOutput{Body: guideResult(g)}, nil
}

func guideResult(g domain.Guide) GuideResult {
	return GuideResult{
		Slug:        g.Slug,
		Title:       g.Title,
		Description: g.Description,
		Date:        g.Date,
		Author:      g.Author,
		Tags:        g.Tags,
		ModTime:     g.ModTime,
	}
}
