package providers

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/saunaguide/saunaguide-server/internal/logger"
	"github.com/saunaguide/saunaguide-server/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Index.Close()
}

// ProvideSearchIndex provides the in-memory search index, built from the
// store snapshot and rebuilt after every data reload.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	idx, err := search.NewIndex(log.Logger)
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}

	if err := idx.Replace(storeHandle.Documents()); err != nil {
		return nil, fmt.Errorf("build search index: %w", err)
	}

	storeHandle.SetOnReload(func() {
		if err := idx.Replace(storeHandle.Documents()); err != nil {
			log.Error("Failed to rebuild search index after reload", "error", err)
		}
	})

	count, err := idx.DocumentCount()
	if err == nil {
		log.Info("Search index built", "documents", count)
	}

	return &SearchIndexHandle{Index: idx}, nil
}
