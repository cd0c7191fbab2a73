package service

import (
	"context"
	"fmt"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/validation"
)

type FavoriteService struct {
	favoriteRepository repository.FavoriteRepository
	contentRepository  repository.ContentRepository
}

func NewFavoriteService(favoriteRepository repository.FavoriteRepository, contentRepository repository.ContentRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepository: favoriteRepository,
		contentRepository:  contentRepository,
	}
}

func (s *FavoriteService) ByUser(ctx context.Context, userID int64) ([]*model.Content, error) {
	return s.favoriteRepository.ByUser(ctx, userID)
}

// Add favorites a published item for the user. Repeating it is a no-op.
func (s *FavoriteService) Add(ctx context.Context, input *model.CreateFavorite) (*model.Favorite, error) {
	err := validation.Struct(input)
	if err != nil {
		return nil, err
	}

	content, err := s.contentRepository.ByID(ctx, input.ContentID)
	if err != nil {
		return nil, err
	}
	if !content.IsPublished {
		return nil, repository.ErrContentNotFound
	}

	favorite, err := s.favoriteRepository.Add(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, contentID int64) error {
	err := s.favoriteRepository.Remove(ctx, userID, contentID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
