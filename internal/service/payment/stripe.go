package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/stripe/stripe-go/v81"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/templui/mediavault/internal/config"
	"github.com/templui/mediavault/internal/model"
)

// StripeProvider prices checkouts inline from the plan, so no Stripe price
// objects need to exist ahead of time.
type StripeProvider struct {
	currency string
}

func NewStripeProvider(cfg *config.Config) *StripeProvider {
	// Set Stripe API key
	stripe.Key = cfg.StripeSecretKey

	slog.Info("stripe provider initialized", "app_env", cfg.AppEnv, "currency", cfg.StripeCurrency)

	return &StripeProvider{currency: cfg.StripeCurrency}
}

func (s *StripeProvider) Name() string {
	return ProviderStripe
}

func (s *StripeProvider) CreateCheckoutURL(ctx context.Context, checkout *Checkout) (string, error) {
	params := s.sessionParams(checkout)
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	slog.Info("stripe checkout created", "user_id", checkout.UserID, "plan_id", checkout.Plan.ID, "session_id", sess.ID)
	return sess.URL, nil
}

func (s *StripeProvider) sessionParams(checkout *Checkout) *stripe.CheckoutSessionParams {
	plan := checkout.Plan

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(s.currency),
		UnitAmount: stripe.Int64(int64(plan.Price)),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(plan.Name),
			Description: stripe.String(plan.Description),
		},
	}

	mode := stripe.CheckoutSessionModePayment
	if interval := stripeInterval(plan.Interval); interval != "" {
		mode = stripe.CheckoutSessionModeSubscription
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(interval),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(mode)),
		SuccessURL: stripe.String(checkout.SuccessURL),
		CancelURL:  stripe.String(checkout.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"user_id": strconv.FormatInt(checkout.UserID, 10),
			"plan_id": strconv.FormatInt(plan.ID, 10),
		},
		AllowPromotionCodes: stripe.Bool(true),
	}
	if checkout.Email != "" {
		params.CustomerEmail = stripe.String(checkout.Email)
	}

	return params
}

func stripeInterval(interval string) string {
	switch interval {
	case model.PlanIntervalMonthly:
		return string(stripe.PriceRecurringIntervalMonth)
	case model.PlanIntervalAnnually:
		return string(stripe.PriceRecurringIntervalYear)
	default:
		return ""
	}
}
