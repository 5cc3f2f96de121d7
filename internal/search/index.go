package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// Index wraps an in-memory Bleve index over the site's static content.
// Because the source data is build-time JSON, the index is rebuilt from
// scratch on every data reload rather than updated incrementally.
//
// All public methods are safe for concurrent use; the mutex guards the
// index swap during Replace.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewIndex creates an empty in-memory index.
func NewIndex(logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Index{index: index, logger: logger}, nil
}

// Replace builds a fresh index over docs and swaps it in atomically.
// Searches running against the old index finish against the old index.
func (s *Index) Replace(docs []*Document) error {
	next, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	const batchSize = 500

	for i := 0; i < len(docs); i += batchSize {
		end := min(i+batchSize, len(docs))

		batch := next.NewBatch()
		for _, doc := range docs[i:end] {
			// Map form so field names match the lowercase mapping.
			if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
				next.Close()
				return fmt.Errorf("batch index %s: %w", doc.ID, err)
			}
		}
		if err := next.Batch(batch); err != nil {
			next.Close()
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}
	}

	s.mu.Lock()
	old := s.index
	s.index = next
	s.mu.Unlock()

	if err := old.Close(); err != nil {
		s.logger.Warn("failed to close replaced search index", "error", err)
	}

	s.logger.Info("search index replaced", "documents", len(docs))
	return nil
}

// DocumentCount returns the total number of indexed documents.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Close releases the index.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}
