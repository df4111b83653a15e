package bootstrap

import (
	"log/slog"

	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(reportFallbacks),
)

// reportFallbacks logs which third-party integrations run in fallback mode.
func reportFallbacks(cfg config.Config, logger *slog.Logger) {
	if !cfg.Payment.RazorpayEnabled() {
		logger.Warn("Razorpay の認証情報が未設定のため、モック決済を使用します")
	}
	if cfg.Google.ClientID == "" {
		logger.Warn("GOOGLE_CLIENT_ID が未設定のため、Google ログインは失敗します")
	}
	if !cfg.Catalog.AmadeusEnabled() && cfg.Catalog.Provider != "local" {
		logger.Info("外部カタログはサンプルデータを使用します", "provider", cfg.Catalog.Provider)
	}
}
