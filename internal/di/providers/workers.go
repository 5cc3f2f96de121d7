package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/saunaguide/saunaguide-server/internal/config"
	"github.com/saunaguide/saunaguide-server/internal/logger"
	"github.com/saunaguide/saunaguide-server/internal/watcher"
)

// FileWatcherHandle wraps the file watcher with shutdown capability.
type FileWatcherHandle struct {
	*watcher.Watcher
	cancel  context.CancelFunc
	started bool
}

// Shutdown implements do.Shutdownable.
func (h *FileWatcherHandle) Shutdown() error {
	if !h.started {
		return nil
	}
	h.cancel()
	return h.Watcher.Stop()
}

// ProvideFileWatcher provides the data file watcher. When watching is
// disabled the handle is inert and Shutdown is a no-op.
func ProvideFileWatcher(i do.Injector) (*FileWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	if !cfg.Data.Watch {
		log.Info("Data file watching disabled by configuration")
		return &FileWatcherHandle{started: false}, nil
	}

	w, err := watcher.New(log.Logger, watcher.Options{IgnoreHidden: true})
	if err != nil {
		return nil, err
	}

	watchTargets := []string{
		cfg.Data.GearFile,
		cfg.Data.ManufacturersFile,
		cfg.Data.SaunasFile,
		cfg.Data.GuidesPath,
	}
	for _, target := range watchTargets {
		if err := w.Watch(target); err != nil {
			log.Warn("Cannot watch data source", "path", target, "error", err)
			continue
		}
		log.Info("Watching data source", "path", target)
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("File watcher error", "error", err)
		}
	}()

	// Any settled change triggers a full reload. The store keeps the previous
	// snapshot when a reload fails, so a half-written file cannot break serving.
	go func() {
		for {
			select {
			case event := <-w.Events():
				log.Info("Data change detected", "type", event.Type.String(), "path", event.Path)
				if err := storeHandle.Reload(); err != nil {
					log.Warn("Reload failed, keeping previous snapshot", "error", err)
				}
			case err := <-w.Errors():
				log.Warn("File watcher error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("Data file watcher started")

	return &FileWatcherHandle{Watcher: w, cancel: cancel, started: true}, nil
}
