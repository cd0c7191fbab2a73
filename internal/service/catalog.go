package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/validation"
)

// CategoryService manages the category taxonomy. Content labels are not
// checked against it.
type CategoryService struct {
	categoryRepository repository.CategoryRepository
}

func NewCategoryService(categoryRepository repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) All(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepository.All(ctx)
}

func (s *CategoryService) Create(ctx context.Context, input *model.CreateCategory) (*model.Category, error) {
	err := validation.Struct(input)
	if err != nil {
		return nil, err
	}

	err = s.checkParent(ctx, input.ParentID)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepository.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, patch *model.CategoryPatch) (*model.Category, error) {
	err := validation.Struct(patch)
	if err != nil {
		return nil, err
	}

	if patch.ParentID != nil && *patch.ParentID == id {
		return nil, validation.NewError("parentId", "must not reference the category itself")
	}

	err = s.checkParent(ctx, patch.ParentID)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	err := s.categoryRepository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *CategoryService) checkParent(ctx context.Context, parentID *int64) error {
	if parentID == nil {
		return nil
	}

	_, err := s.categoryRepository.ByID(ctx, *parentID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return validation.NewError("parentId", "must reference an existing category")
		}
		return fmt.Errorf("failed to get parent category: %w", err)
	}
	return nil
}

type PlanService struct {
	planRepository repository.PlanRepository
}

func NewPlanService(planRepository repository.PlanRepository) *PlanService {
	return &PlanService{planRepository: planRepository}
}

func (s *PlanService) Active(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	return s.planRepository.Active(ctx)
}

func (s *PlanService) All(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	return s.planRepository.All(ctx)
}

func (s *PlanService) ByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	return s.planRepository.ByID(ctx, id)
}

func (s *PlanService) Create(ctx context.Context, input *model.CreateSubscriptionPlan) (*model.SubscriptionPlan, error) {
	err := validation.Struct(input)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepository.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, id int64, patch *model.SubscriptionPlanPatch) (*model.SubscriptionPlan, error) {
	err := validation.Struct(patch)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, id int64) error {
	err := s.planRepository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
