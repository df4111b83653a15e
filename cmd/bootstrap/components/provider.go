package components

import (
	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/infra/google"
	"hotel-booking/internal/infra/payment"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// ProviderModule wires the outbound integrations. Each one degrades to a local fallback when unconfigured.
var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewCatalogProvider,
		NewPaymentProvider,
		fx.Annotate(
			NewGoogleVerifier,
			fx.As(new(commands.GoogleVerifier)),
		),
		NewTokenIssuer,
	),
)

func NewCatalogProvider(cfg config.Config, hotels catalog.AddressSearcher, c *cache.Cache) queries.CatalogProvider {
	if c == nil {
		return catalog.New(cfg.Catalog, hotels, nil)
	}
	return catalog.New(cfg.Catalog, hotels, c)
}

func NewPaymentProvider(cfg config.Config) commands.PaymentProvider {
	return payment.New(cfg.Payment, cfg.Catalog.Timeout)
}

func NewGoogleVerifier(cfg config.Config) *google.Verifier {
	return google.NewVerifier(cfg.Google.ClientID, cfg.Catalog.Timeout)
}

func NewTokenIssuer(s *jwt.Service) commands.TokenIssuer {
	return s
}
