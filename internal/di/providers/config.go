// Package providers contains dependency injection providers for the Sauna Guide server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/saunaguide/saunaguide-server/internal/catalog"
	"github.com/saunaguide/saunaguide-server/internal/config"
	"github.com/saunaguide/saunaguide-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Sauna Guide Server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.BasePath,
		"base_url", cfg.Site.BaseURL,
	)

	return log, nil
}

// ProvideImageResolver provides the product image path resolver.
func ProvideImageResolver(i do.Injector) (*catalog.ImageResolver, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return catalog.NewImageResolver(cfg.Site.PublicPath, cfg.Site.ProductImagePath, log.Logger), nil
}
