package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/validation"
)

func TestSetPremium(t *testing.T) {
	store := seededStore(t)
	email := service.NewEmailService("", "noreply@example.com", "http://localhost", "MediaVault", true)
	users := service.NewUserService(store.Users, email)
	ctx := context.Background()

	member, err := store.Users.ByUsername(ctx, "user")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}
	start := time.Now()

	granted, err := users.SetPremium(ctx, member.ID, &model.PremiumGrant{
		IsPremium:        boolPtr(true),
		SubscriptionType: strPtr(model.PlanIntervalMonthly),
	})
	if err != nil {
		t.Fatalf("SetPremium grant failed: %v", err)
	}
	if !granted.IsPremium || granted.SubscriptionExpiry == nil {
		t.Fatalf("grant = %+v", granted)
	}
	if !granted.SubscriptionExpiry.After(start.AddDate(0, 0, 27)) {
		t.Errorf("monthly expiry %v is too early", granted.SubscriptionExpiry)
	}
	if !granted.HasPremiumAccess(time.Now()) {
		t.Error("granted user has no premium access")
	}

	revoked, err := users.SetPremium(ctx, member.ID, &model.PremiumGrant{IsPremium: boolPtr(false)})
	if err != nil {
		t.Fatalf("SetPremium revoke failed: %v", err)
	}
	if revoked.IsPremium || revoked.HasPremiumAccess(time.Now().Add(time.Second)) {
		t.Errorf("revoke = %+v", revoked)
	}

	lifetime, err := users.SetPremium(ctx, member.ID, &model.PremiumGrant{
		IsPremium:        boolPtr(true),
		SubscriptionType: strPtr(model.PlanIntervalLifetime),
	})
	if err != nil {
		t.Fatalf("SetPremium lifetime failed: %v", err)
	}
	if lifetime.SubscriptionExpiry != nil {
		t.Errorf("lifetime expiry = %v, want none", lifetime.SubscriptionExpiry)
	}

	count, err := store.Users.CountPremium(ctx)
	if err != nil {
		t.Fatalf("CountPremium failed: %v", err)
	}
	if count != 2 {
		t.Errorf("premium members = %d, want 2", count)
	}
}

func TestSetPremiumRejects(t *testing.T) {
	store := seededStore(t)
	email := service.NewEmailService("", "noreply@example.com", "http://localhost", "MediaVault", true)
	users := service.NewUserService(store.Users, email)
	ctx := context.Background()

	var verr *validation.Error

	_, err := users.SetPremium(ctx, 2, &model.PremiumGrant{IsPremium: boolPtr(true)})
	if !errors.As(err, &verr) {
		t.Errorf("grant without type: got %v", err)
	}

	_, err = users.SetPremium(ctx, 2, &model.PremiumGrant{})
	if !errors.As(err, &verr) {
		t.Errorf("missing isPremium: got %v", err)
	}

	_, err = users.SetPremium(ctx, 99, &model.PremiumGrant{IsPremium: boolPtr(false)})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("unknown user: got %v", err)
	}
}
