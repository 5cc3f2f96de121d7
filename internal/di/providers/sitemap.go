package providers

import (
	"github.com/samber/do/v2"

	"github.com/saunaguide/saunaguide-server/internal/brands"
	"github.com/saunaguide/saunaguide-server/internal/catalog"
	"github.com/saunaguide/saunaguide-server/internal/config"
	"github.com/saunaguide/saunaguide-server/internal/directory"
	"github.com/saunaguide/saunaguide-server/internal/guides"
	"github.com/saunaguide/saunaguide-server/internal/logger"
	"github.com/saunaguide/saunaguide-server/internal/sitemap"
)

// ProvideSitemapBuilder provides the sitemap builder, fed from the live
// store snapshot so a data reload is reflected on the next request.
func ProvideSitemapBuilder(i do.Injector) (*sitemap.Builder, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	sources := sitemap.Sources{
		Catalog: func() (*catalog.Catalog, error) { return storeHandle.Catalog(), nil },
		Saunas:  func() (*directory.Directory, error) { return storeHandle.Saunas(), nil },
		Brands:  func() (*brands.Directory, error) { return storeHandle.Brands(), nil },
		Guides:  func() (*guides.Library, error) { return storeHandle.Guides(), nil },
	}

	return sitemap.NewBuilder(cfg.Site.BaseURL, sources, log.Logger), nil
}
