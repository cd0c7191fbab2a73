package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
	emailService   *EmailService
}

func NewUserService(userRepository repository.UserRepository, emailService *EmailService) *UserService {
	return &UserService{
		userRepository: userRepository,
		emailService:   emailService,
	}
}

func (s *UserService) ByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepository.ByID(ctx, id)
}

func (s *UserService) All(ctx context.Context) ([]*model.User, error) {
	return s.userRepository.All(ctx)
}

// SetPremium grants or revokes premium access. A grant without an explicit
// expiry runs for one billing interval; lifetime grants never expire.
func (s *UserService) SetPremium(ctx context.Context, id int64, grant *model.PremiumGrant) (*model.User, error) {
	err := validation.Struct(grant)
	if err != nil {
		return nil, err
	}
	if *grant.IsPremium && grant.SubscriptionType == nil {
		return nil, validation.NewError("subscriptionType", "is required when granting premium")
	}

	now := time.Now().UTC()
	patch := &model.UserPatch{IsPremium: grant.IsPremium}

	if *grant.IsPremium {
		patch.SubscriptionType = grant.SubscriptionType
		patch.SubscriptionExpiry = grant.SubscriptionExpiry
		if patch.SubscriptionExpiry == nil {
			patch.SubscriptionExpiry = defaultExpiry(*grant.SubscriptionType, now)
			patch.ClearExpiry = patch.SubscriptionExpiry == nil
		}
	} else {
		patch.SubscriptionExpiry = &now
	}

	user, err := s.userRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update premium access: %w", err)
	}

	s.notifyPremiumChange(ctx, user)
	return user, nil
}

func (s *UserService) notifyPremiumChange(ctx context.Context, user *model.User) {
	if user.Email == nil {
		return
	}

	var err error
	if user.IsPremium {
		subscriptionType := model.PlanIntervalLifetime
		if user.SubscriptionType != nil {
			subscriptionType = *user.SubscriptionType
		}
		err = s.emailService.SendPremiumGrantedEmail(ctx, *user.Email, user.Username, subscriptionType)
	} else {
		err = s.emailService.SendPremiumRevokedEmail(ctx, *user.Email, user.Username)
	}
	if err != nil {
		slog.Error("failed to send premium notification", "error", err, "user_id", user.ID)
	}
}

func defaultExpiry(subscriptionType string, from time.Time) *time.Time {
	var expiry time.Time
	switch subscriptionType {
	case model.PlanIntervalMonthly:
		expiry = from.AddDate(0, 1, 0)
	case model.PlanIntervalAnnually:
		expiry = from.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &expiry
}
