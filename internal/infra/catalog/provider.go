package catalog

import (
	"log/slog"
	"strings"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
)

const (
	ProviderAuto    = "auto"
	ProviderStatic  = "static"
	ProviderAmadeus = "amadeus"
	ProviderLocal   = "local"
)

// New selects the catalog from CATALOG_PROVIDER. cache may be nil.
func New(cfg config.CatalogConfig, local AddressSearcher, cache JSONCache) queries.CatalogProvider {
	static := NewStaticProvider()

	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == ProviderAuto || name == "" {
		name = ProviderStatic
		if cfg.AmadeusEnabled() {
			name = ProviderAmadeus
		}
	}

	var provider queries.CatalogProvider
	switch name {
	case ProviderAmadeus:
		if !cfg.AmadeusEnabled() {
			slog.Warn("amadeus credentials missing, using sample catalog")
			return static
		}
		provider = amadeusCatalog(NewAmadeusProvider(cfg), static, cache, cfg.CacheTTL)
	case ProviderLocal:
		provider = NewLocalProvider(local)
	case ProviderStatic:
		provider = static
	default:
		slog.Warn("unknown catalog provider, using sample catalog", "provider", cfg.Provider)
		provider = static
	}

	slog.Info("catalog provider selected", "provider", name, "cached", cache != nil && name == ProviderAmadeus)
	return provider
}

// amadeusCatalog caches upstream answers only. Fallback results are served but never stored.
func amadeusCatalog(upstream, fallback queries.CatalogProvider, cache JSONCache, ttl time.Duration) queries.CatalogProvider {
	if cache != nil {
		upstream = NewCachedProvider(upstream, cache, ttl)
	}
	return NewFallbackProvider(ProviderAmadeus, upstream, fallback)
}
