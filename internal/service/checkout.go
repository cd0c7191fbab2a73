package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/service/payment"
	"github.com/templui/mediavault/internal/validation"
)

// CheckoutService hands out hosted checkout URLs. Payment state is owned by
// the provider; premium access is still granted by an admin.
type CheckoutService struct {
	planRepository repository.PlanRepository
	provider       payment.Provider
	appURL         string
}

func NewCheckoutService(planRepository repository.PlanRepository, provider payment.Provider, appURL string) *CheckoutService {
	return &CheckoutService{
		planRepository: planRepository,
		provider:       provider,
		appURL:         appURL,
	}
}

func (s *CheckoutService) Provider() string {
	return s.provider.Name()
}

// CheckoutURL returns payment.ErrCheckoutUnavailable when no provider is
// configured and repository.ErrPlanNotFound for unknown or inactive plans.
func (s *CheckoutService) CheckoutURL(ctx context.Context, user *model.User, input *model.CheckoutRequest) (string, error) {
	err := validation.Struct(input)
	if err != nil {
		return "", err
	}

	plan, err := s.planRepository.ByID(ctx, input.PlanID)
	if err != nil {
		return "", err
	}
	if !plan.IsActive {
		return "", repository.ErrPlanNotFound
	}

	checkout := &payment.Checkout{
		UserID:     user.ID,
		Username:   user.Username,
		Plan:       plan,
		SuccessURL: s.appURL + "/account?checkout=success",
		CancelURL:  s.appURL + "/pricing",
	}
	if user.Email != nil {
		checkout.Email = *user.Email
	}

	url, err := s.provider.CreateCheckoutURL(ctx, checkout)
	if err != nil {
		if errors.Is(err, payment.ErrCheckoutUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("failed to create checkout: %w", err)
	}

	return url, nil
}
