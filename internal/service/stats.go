package service

import (
	"context"
	"fmt"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

const RecentContentLimit = 5

// StatsService builds the admin dashboard report. Nothing is cached.
type StatsService struct {
	contentRepository repository.ContentRepository
	userRepository    repository.UserRepository
}

func NewStatsService(contentRepository repository.ContentRepository, userRepository repository.UserRepository) *StatsService {
	return &StatsService{
		contentRepository: contentRepository,
		userRepository:    userRepository,
	}
}

func (s *StatsService) Stats(ctx context.Context) (*model.AdminStats, error) {
	totals, err := s.contentRepository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get content stats: %w", err)
	}

	premium, err := s.userRepository.CountPremium(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count premium members: %w", err)
	}

	recent, err := s.contentRepository.Recent(ctx, RecentContentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent content: %w", err)
	}

	return &model.AdminStats{
		TotalViews:     totals.TotalViews,
		PremiumMembers: premium,
		ContentCount:   totals.Count(),
		RecentContent:  recent,
	}, nil
}
