package payment

import (
	"context"
	"errors"

	"github.com/templui/mediavault/internal/model"
)

const (
	ProviderNone   = "none"
	ProviderStripe = "stripe"
	ProviderPolar  = "polar"
)

// ErrCheckoutUnavailable is returned when no payment provider is configured.
var ErrCheckoutUnavailable = errors.New("payment processing is not available yet")

// Checkout describes a hosted checkout for one plan and one user.
type Checkout struct {
	UserID     int64
	Username   string
	Email      string
	Plan       *model.SubscriptionPlan
	SuccessURL string
	CancelURL  string
}

// Provider defines the interface that all payment providers must implement
type Provider interface {
	// CreateCheckoutURL creates a hosted checkout session and returns its URL
	CreateCheckoutURL(ctx context.Context, checkout *Checkout) (string, error)

	// Name returns the provider name (e.g., "polar", "stripe")
	Name() string
}

// NoopProvider hands out no checkout sessions.
type NoopProvider struct{}

func (NoopProvider) CreateCheckoutURL(ctx context.Context, checkout *Checkout) (string, error) {
	return "", ErrCheckoutUnavailable
}

func (NoopProvider) Name() string {
	return ProviderNone
}
