package payment

import (
	"fmt"
	"log/slog"

	"github.com/templui/mediavault/internal/config"
)

// NewProvider creates a payment provider based on configuration
func NewProvider(cfg *config.Config) (Provider, error) {
	provider := cfg.PaymentProvider

	slog.Info("initializing payment provider", "provider", provider)

	switch provider {
	case ProviderNone, "":
		return NoopProvider{}, nil

	case ProviderPolar:
		if cfg.PolarAPIKey == "" {
			return nil, fmt.Errorf("POLAR_API_KEY is required when using Polar provider")
		}
		return NewPolarProvider(cfg), nil

	case ProviderStripe:
		if cfg.StripeSecretKey == "" {
			return nil, fmt.Errorf("STRIPE_SECRET_KEY is required when using Stripe provider")
		}
		return NewStripeProvider(cfg), nil

	default:
		return nil, fmt.Errorf("unknown payment provider: %s (supported: none, polar, stripe)", provider)
	}
}
