package payment

import (
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
)

// New picks Razorpay when both keys are configured, the mock provider otherwise.
func New(cfg config.PaymentConfig, timeout time.Duration) commands.PaymentProvider {
	if cfg.RazorpayEnabled() {
		slog.Info("payment provider selected", "provider", razorpayService)
		return NewRazorpayProvider(cfg, timeout)
	}
	slog.Info("payment provider selected", "provider", "mock")
	return NewMockProvider()
}
