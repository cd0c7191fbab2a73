package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	polargo "github.com/polarsource/polar-go"
	"github.com/polarsource/polar-go/models/components"
	"github.com/templui/mediavault/internal/config"
	"github.com/templui/mediavault/internal/model"
)

type PolarProvider struct {
	client   *polargo.Polar
	products map[string]string
}

func NewPolarProvider(cfg *config.Config) *PolarProvider {
	var serverOption polargo.SDKOption
	if cfg.PolarSandboxMode {
		serverOption = polargo.WithServer(polargo.ServerSandbox)
		slog.Info("polar using sandbox mode", "app_env", cfg.AppEnv)
	} else {
		serverOption = polargo.WithServer(polargo.ServerProduction)
		slog.Info("polar using production mode", "app_env", cfg.AppEnv)
	}

	client := polargo.New(
		polargo.WithSecurity(cfg.PolarAPIKey),
		serverOption,
	)

	return &PolarProvider{
		client: client,
		products: map[string]string{
			model.PlanIntervalMonthly:  cfg.PolarProductIDMonthly,
			model.PlanIntervalAnnually: cfg.PolarProductIDAnnually,
			model.PlanIntervalLifetime: cfg.PolarProductIDLifetime,
		},
	}
}

func (p *PolarProvider) Name() string {
	return ProviderPolar
}

func (p *PolarProvider) CreateCheckoutURL(ctx context.Context, checkout *Checkout) (string, error) {
	plan := checkout.Plan

	productID := p.products[plan.Interval]
	if productID == "" {
		return "", fmt.Errorf("no product configured for plan: %d (%s)", plan.ID, plan.Interval)
	}

	metadata := map[string]components.CheckoutCreateMetadata{
		"user_id": components.CreateCheckoutCreateMetadataStr(strconv.FormatInt(checkout.UserID, 10)),
		"plan_id": components.CreateCheckoutCreateMetadataStr(strconv.FormatInt(plan.ID, 10)),
	}

	create := components.CheckoutCreate{
		Products:           []string{productID},
		SuccessURL:         polargo.String(checkout.SuccessURL),
		ReturnURL:          polargo.String(checkout.CancelURL),
		CustomerName:       polargo.String(checkout.Username),
		AllowDiscountCodes: polargo.Bool(true),
		Metadata:           metadata,
	}
	if checkout.Email != "" {
		create.CustomerEmail = polargo.String(checkout.Email)
	}

	res, err := p.client.Checkouts.Create(ctx, create)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout: %w", err)
	}

	if res == nil || res.Checkout == nil {
		return "", fmt.Errorf("checkout response is nil")
	}

	slog.Info("polar checkout created", "user_id", checkout.UserID, "plan_id", plan.ID, "checkout_id", res.Checkout.ID)
	return res.Checkout.URL, nil
}
