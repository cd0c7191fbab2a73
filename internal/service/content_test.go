package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/repository/memory"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/validation"
)

func TestContentCreateRoundTrip(t *testing.T) {
	store := memory.New()
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	input := validContent("Window Light Portraits")
	created, err := contents.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := contents.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}

	if got.Title != input.Title || got.Description != input.Description ||
		got.Type != input.Type || got.AccessLevel != input.AccessLevel ||
		got.ThumbnailURL != input.ThumbnailURL || got.ContentURL != input.ContentURL {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Duration == nil || *got.Duration != *input.Duration {
		t.Errorf("duration = %v, want %s", got.Duration, *input.Duration)
	}
	if len(got.Categories) != 2 || got.Categories[0] != "lighting" || got.Categories[1] != "photography" {
		t.Errorf("categories = %v", got.Categories)
	}
	if got.Views != 0 {
		t.Errorf("views = %d, want 0", got.Views)
	}
	if !got.IsPublished {
		t.Error("isPublished should default to true")
	}
	mustNotBeZero(t, "createdAt", got.CreatedAt)
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("updatedAt before createdAt")
	}
}

func TestContentCreateRejectsInvalidInput(t *testing.T) {
	store := memory.New()
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	input := validContent("Broken")
	input.ThumbnailURL = "not-a-url"

	_, err := contents.Create(ctx, input)
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields[0].Field != "thumbnailUrl" {
		t.Errorf("field = %s, want thumbnailUrl", verr.Fields[0].Field)
	}

	all, err := contents.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("invalid create stored %d items", len(all))
	}
}

func TestContentUpdate(t *testing.T) {
	store := memory.New()
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	created, err := contents.Create(ctx, validContent("Before"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := contents.Update(ctx, created.ID, &model.ContentPatch{Title: strPtr("After")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "After" || updated.Description != created.Description {
		t.Errorf("patch applied wrongly: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt changed on update")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("updatedAt moved backwards")
	}

	_, err = contents.Update(ctx, created.ID, &model.ContentPatch{Type: strPtr("audio")})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Errorf("expected validation error for bad type, got %v", err)
	}

	_, err = contents.Update(ctx, 999, &model.ContentPatch{Title: strPtr("Missing")})
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound, got %v", err)
	}
}

func TestContentPublishedHidesDrafts(t *testing.T) {
	store := memory.New()
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	draft := createContent(t, store, unpublished(validContent("Draft")))

	_, err := contents.Published(ctx, draft.ID, false)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("public read of a draft: got %v, want ErrContentNotFound", err)
	}

	got, err := contents.Published(ctx, draft.ID, true)
	if err != nil || got.ID != draft.ID {
		t.Errorf("admin read of a draft failed: %v", err)
	}

	for name, list := range map[string]func(context.Context) ([]*model.Content, error){
		"featured": contents.Featured,
		"trending": contents.Trending,
		"new":      contents.New,
	} {
		items, err := list(ctx)
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		if containsTitle(items, draft.Title) {
			t.Errorf("%s returned an unpublished item", name)
		}
	}
}

func TestContentDerivedListings(t *testing.T) {
	store := seededStore(t)
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	featured, err := contents.Featured(ctx)
	if err != nil {
		t.Fatalf("Featured failed: %v", err)
	}
	trending, err := contents.Trending(ctx)
	if err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	fresh, err := contents.New(ctx)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(featured) != service.FeaturedLimit || len(trending) != service.TrendingLimit || len(fresh) != service.NewLimit {
		t.Fatalf("sizes: featured=%d trending=%d new=%d", len(featured), len(trending), len(fresh))
	}
	for i := range featured {
		if featured[i].ID != trending[i].ID {
			t.Errorf("featured[%d] = %d, trending[%d] = %d", i, featured[i].ID, i, trending[i].ID)
		}
	}
}

func TestRecordView(t *testing.T) {
	store := memory.New()
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	c := createContent(t, store, validContent("Counted"))
	for range 3 {
		err := contents.RecordView(ctx, c.ID)
		if err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}

	got, err := contents.ByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.Views != 3 {
		t.Errorf("views = %d, want 3", got.Views)
	}

	err = contents.RecordView(ctx, 999)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound, got %v", err)
	}
}

func TestContentDelete(t *testing.T) {
	store := memory.New()
	contents := service.NewContentService(store.Content)
	ctx := context.Background()

	c := createContent(t, store, validContent("Doomed"))
	err := contents.Delete(ctx, c.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	err = contents.Delete(ctx, c.ID)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("second delete: got %v, want ErrContentNotFound", err)
	}
}
