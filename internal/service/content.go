package service

import (
	"context"
	"fmt"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/validation"
)

const (
	FeaturedLimit = 8
	TrendingLimit = 10
	NewLimit      = 6
)

type ContentService struct {
	contentRepository repository.ContentRepository
}

func NewContentService(contentRepository repository.ContentRepository) *ContentService {
	return &ContentService{contentRepository: contentRepository}
}

func (s *ContentService) Featured(ctx context.Context) ([]*model.Content, error) {
	return s.contentRepository.MostViewed(ctx, FeaturedLimit)
}

func (s *ContentService) Trending(ctx context.Context) ([]*model.Content, error) {
	return s.contentRepository.MostViewed(ctx, TrendingLimit)
}

func (s *ContentService) New(ctx context.Context) ([]*model.Content, error) {
	return s.contentRepository.Newest(ctx, NewLimit)
}

// Published returns a single item for public readers. Unpublished items are
// reported as missing unless includeUnpublished is set.
func (s *ContentService) Published(ctx context.Context, id int64, includeUnpublished bool) (*model.Content, error) {
	content, err := s.contentRepository.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !content.IsPublished && !includeUnpublished {
		return nil, repository.ErrContentNotFound
	}
	return content, nil
}

func (s *ContentService) ByID(ctx context.Context, id int64) (*model.Content, error) {
	return s.contentRepository.ByID(ctx, id)
}

func (s *ContentService) All(ctx context.Context) ([]*model.Content, error) {
	return s.contentRepository.All(ctx)
}

// RecordView bumps the view counter by one.
func (s *ContentService) RecordView(ctx context.Context, id int64) error {
	err := s.contentRepository.IncrementViews(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

func (s *ContentService) Create(ctx context.Context, input *model.CreateContent) (*model.Content, error) {
	err := validation.Struct(input)
	if err != nil {
		return nil, err
	}

	content, err := s.contentRepository.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return content, nil
}

func (s *ContentService) Update(ctx context.Context, id int64, patch *model.ContentPatch) (*model.Content, error) {
	err := validation.Struct(patch)
	if err != nil {
		return nil, err
	}

	content, err := s.contentRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	return content, nil
}

func (s *ContentService) Delete(ctx context.Context, id int64) error {
	err := s.contentRepository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return nil
}
