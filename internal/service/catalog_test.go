package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/validation"
)

func TestCategoryService(t *testing.T) {
	store := seededStore(t)
	categories := service.NewCategoryService(store.Categories)
	ctx := context.Background()

	parent, err := store.Categories.ByID(ctx, 1)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}

	child, err := categories.Create(ctx, &model.CreateCategory{
		Name:     "Portraits",
		Slug:     "portraits",
		ParentID: &parent.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Errorf("parentId = %v, want %d", child.ParentID, parent.ID)
	}

	var verr *validation.Error

	_, err = categories.Create(ctx, &model.CreateCategory{Name: "Bad Slug", Slug: "Bad Slug"})
	if !errors.As(err, &verr) {
		t.Errorf("bad slug: got %v", err)
	}

	missing := int64(999)
	_, err = categories.Create(ctx, &model.CreateCategory{Name: "Orphan", Slug: "orphan", ParentID: &missing})
	if !errors.As(err, &verr) || verr.Fields[0].Field != "parentId" {
		t.Errorf("missing parent: got %v", err)
	}

	_, err = categories.Update(ctx, child.ID, &model.CategoryPatch{ParentID: &child.ID})
	if !errors.As(err, &verr) {
		t.Errorf("self parent: got %v", err)
	}

	_, err = categories.Create(ctx, &model.CreateCategory{Name: "Portraits", Slug: "portraits-2"})
	if !errors.Is(err, repository.ErrDuplicateCategory) {
		t.Errorf("duplicate name: got %v", err)
	}

	err = categories.Delete(ctx, child.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	err = categories.Delete(ctx, child.ID)
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		t.Errorf("second delete: got %v", err)
	}
}

func TestPlanService(t *testing.T) {
	store := seededStore(t)
	plans := service.NewPlanService(store.Plans)
	ctx := context.Background()

	active, err := plans.Active(ctx)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("active plans = %d, want 3", len(active))
	}

	_, err = plans.Update(ctx, active[0].ID, &model.SubscriptionPlanPatch{IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	active, err = plans.Active(ctx)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	all, err := plans.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(active) != 2 || len(all) != 3 {
		t.Errorf("active=%d all=%d, want 2 and 3", len(active), len(all))
	}

	_, err = plans.Create(ctx, &model.CreateSubscriptionPlan{
		Name:        "Weekly",
		Description: "Seven days",
		Price:       299,
		Interval:    "weekly",
	})
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Fields[0].Field != "interval" {
		t.Errorf("bad interval: got %v", err)
	}

	_, err = plans.Create(ctx, &model.CreateSubscriptionPlan{
		Name:        "Negative",
		Description: "Refund",
		Price:       -1,
		Interval:    model.PlanIntervalMonthly,
	})
	if !errors.As(err, &verr) || verr.Fields[0].Field != "price" {
		t.Errorf("negative price: got %v", err)
	}
}
