package providers

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/saunaguide/saunaguide-server/internal/catalog"
	"github.com/saunaguide/saunaguide-server/internal/config"
	"github.com/saunaguide/saunaguide-server/internal/logger"
	"github.com/saunaguide/saunaguide-server/internal/store"
)

// StoreHandle wraps the data store for lifecycle management.
type StoreHandle struct {
	*store.Store
}

// ProvideStore provides the data store with all sources loaded.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	images := do.MustInvoke[*catalog.ImageResolver](i)

	st := store.New(store.Paths{
		Gear:          cfg.Data.GearFile,
		Manufacturers: cfg.Data.ManufacturersFile,
		Saunas:        cfg.Data.SaunasFile,
		GuidesDir:     cfg.Data.GuidesPath,
	}, images, log.Logger)

	if err := st.Load(); err != nil {
		return nil, fmt.Errorf("load site data: %w", err)
	}

	cat := st.Catalog()
	log.Info("Site data loaded",
		"products", len(cat.AllProducts()),
		"categories", len(cat.Categories()),
		"brands", len(st.Brands().All()),
		"saunas", len(st.Saunas().All()),
		"guides", len(st.Guides().All()),
	)

	return &StoreHandle{Store: st}, nil
}
