// Package sitemap derives the crawlable route list from the catalog, the
// sauna directory, the brand directory, and the guide library. Each dynamic
// entry gets a priority and change frequency from a content-richness score.
package sitemap

import (
	"log/slog"
	"sort"
	"time"

	"github.com/saunaguide/saunaguide-server/internal/brands"
	"github.com/saunaguide/saunaguide-server/internal/catalog"
	"github.com/saunaguide/saunaguide-server/internal/directory"
	"github.com/saunaguide/saunaguide-server/internal/domain"
	"github.com/saunaguide/saunaguide-server/internal/guides"
)

// Sources are the data providers the builder draws from. Any of them may be
// nil; a nil source contributes an empty group.
type Sources struct {
	Catalog func() (*catalog.Catalog, error)
	Saunas  func() (*directory.Directory, error)
	Brands  func() (*brands.Directory, error)
	Guides  func() (*guides.Library, error)
}

// Builder assembles sitemap entries. One group failing to load is logged and
// skipped; the remaining groups still make it into the sitemap.
type Builder struct {
	baseURL string
	sources Sources
	logger  *slog.Logger
	now     func() time.Time
}

func NewBuilder(baseURL string, sources Sources, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{
		baseURL: baseURL,
		sources: sources,
		logger:  logger,
		now:     time.Now,
	}
}

// Build returns the full route list: static routes first, then saunas,
// guides, gear products, and brands. Each dynamic group is sorted by
// descending priority before concatenation.
func (b *Builder) Build() []domain.SitemapEntry {
	now := b.now()
	entries := b.staticEntries(now)

	entries = append(entries, b.saunaEntries(now)...)
	entries = append(entries, b.guideEntries()...)
	entries = append(entries, b.gearEntries(now)...)
	entries = append(entries, b.brandEntries(now)...)

	return entries
}

func (b *Builder) staticEntries(now time.Time) []domain.SitemapEntry {
	routes := []struct {
		path     string
		freq     domain.ChangeFrequency
		priority float64
	}{
		{"", domain.FrequencyDaily, 1.0},
		{"/saunas", domain.FrequencyDaily, 0.9},
		{"/gear", domain.FrequencyWeekly, 0.9},
		{"/brands", domain.FrequencyWeekly, 0.9},
		{"/guides", domain.FrequencyWeekly, 0.9},
		{"/about", domain.FrequencyMonthly, 0.5},
	}

	entries := make([]domain.SitemapEntry, 0, len(routes))
	for _, r := range routes {
		entries = append(entries, domain.SitemapEntry{
			URL:             b.baseURL + r.path,
			LastModified:    now,
			ChangeFrequency: r.freq,
			Priority:        r.priority,
		})
	}
	return entries
}

func (b *Builder) gearEntries(now time.Time) []domain.SitemapEntry {
	if b.sources.Catalog == nil {
		return nil
	}
	cat, err := b.sources.Catalog()
	if err != nil {
		b.logger.Error("sitemap: gear catalog unavailable", "error", err)
		return nil
	}

	products := cat.AllProducts()
	entries := make([]domain.SitemapEntry, 0, len(products))
	for _, p := range products {
		priority, freq := ScoreProduct(p)
		entries = append(entries, domain.SitemapEntry{
			URL:             b.baseURL + "/gear/" + p.Slug,
			LastModified:    now,
			ChangeFrequency: freq,
			Priority:        priority,
		})
	}
	sortByPriority(entries)
	return entries
}

func (b *Builder) saunaEntries(now time.Time) []domain.SitemapEntry {
	if b.sources.Saunas == nil {
		return nil
	}
	dir, err := b.sources.Saunas()
	if err != nil {
		b.logger.Error("sitemap: sauna directory unavailable", "error", err)
		return nil
	}

	saunas := dir.All()
	entries := make([]domain.SitemapEntry, 0, len(saunas))
	for _, s := range saunas {
		priority, freq := ScoreSauna(s)
		entries = append(entries, domain.SitemapEntry{
			URL:             b.baseURL + "/saunas/" + s.ID,
			LastModified:    now,
			ChangeFrequency: freq,
			Priority:        priority,
		})
	}
	sortByPriority(entries)
	return entries
}

func (b *Builder) guideEntries() []domain.SitemapEntry {
	if b.sources.Guides == nil {
		return nil
	}
	lib, err := b.sources.Guides()
	if err != nil {
		b.logger.Error("sitemap: guide library unavailable", "error", err)
		return nil
	}

	all := lib.All() // already newest-first
	entries := make([]domain.SitemapEntry, 0, len(all))
	for _, g := range all {
		entries = append(entries, domain.SitemapEntry{
			URL:             b.baseURL + "/guides/" + g.Slug,
			LastModified:    g.ModTime,
			ChangeFrequency: domain.FrequencyMonthly,
			Priority:        0.9,
		})
	}
	return entries
}

func (b *Builder) brandEntries(now time.Time) []domain.SitemapEntry {
	if b.sources.Brands == nil {
		return nil
	}
	dir, err := b.sources.Brands()
	if err != nil {
		b.logger.Error("sitemap: brand directory unavailable", "error", err)
		return nil
	}

	all := dir.All()
	entries := make([]domain.SitemapEntry, 0, len(all))
	for _, m := range all {
		entries = append(entries, domain.SitemapEntry{
			URL:             b.baseURL + "/brands/" + m.Slug,
			LastModified:    now,
			ChangeFrequency: domain.FrequencyMonthly,
			Priority:        0.7,
		})
	}
	return entries
}

// ScoreProduct rates a gear product's content richness and maps the score to
// a priority and change frequency.
func ScoreProduct(p domain.Product) (float64, domain.ChangeFrequency) {
	score := 0

	switch textLen := len(p.Description) + len(p.Why); {
	case textLen >= 300:
		score += 3
	case textLen >= 200:
		score += 2
	case textLen >= 140:
		score++
	}

	switch specs := len(p.Specs); {
	case specs >= 3:
		score += 2
	case specs >= 1:
		score++
	}

	if p.WhyPeopleLikeIt != "" {
		score++
	}
	if p.RedditSentiment != "" {
		score++
	}
	if p.Image != "" {
		score++
	}

	switch {
	case score >= 4:
		return 0.75, domain.FrequencyMonthly
	case score >= 2:
		return 0.65, domain.FrequencyMonthly
	default:
		return 0.55, domain.FrequencyYearly
	}
}

// ScoreSauna rates a sauna listing's content richness.
func ScoreSauna(s domain.Sauna) (float64, domain.ChangeFrequency) {
	score := 0

	switch descLen := len(s.Description); {
	case descLen >= 220:
		score += 2
	case descLen >= 140:
		score++
	}

	if len(s.Features) >= 4 {
		score++
	}
	if s.Website != "" {
		score++
	}
	if s.Rating >= 4.7 {
		score++
	}

	switch {
	case score >= 4:
		return 0.8, domain.FrequencyMonthly
	case score >= 2:
		return 0.7, domain.FrequencyMonthly
	default:
		return 0.6, domain.FrequencyYearly
	}
}

func sortByPriority(entries []domain.SitemapEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
}
