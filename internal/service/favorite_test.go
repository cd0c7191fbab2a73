package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/service"
)

func TestFavoriteService(t *testing.T) {
	store := seededStore(t)
	favorites := service.NewFavoriteService(store.Favorites, store.Content)
	ctx := context.Background()

	draft := createContent(t, store, unpublished(validContent("Draft")))

	first, err := favorites.Add(ctx, &model.CreateFavorite{UserID: 2, ContentID: 3})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	again, err := favorites.Add(ctx, &model.CreateFavorite{UserID: 2, ContentID: 3})
	if err != nil {
		t.Fatalf("repeat Add failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("repeat Add created favorite %d, want %d", again.ID, first.ID)
	}

	_, err = favorites.Add(ctx, &model.CreateFavorite{UserID: 2, ContentID: draft.ID})
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("favoriting a draft: got %v", err)
	}
	_, err = favorites.Add(ctx, &model.CreateFavorite{UserID: 2, ContentID: 999})
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("favoriting missing content: got %v", err)
	}

	items, err := favorites.ByUser(ctx, 2)
	if err != nil {
		t.Fatalf("ByUser failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Errorf("favorites = %v", items)
	}

	others, err := favorites.ByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ByUser failed: %v", err)
	}
	if len(others) != 0 {
		t.Errorf("admin has %d favorites, want 0", len(others))
	}

	err = favorites.Remove(ctx, 2, 3)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	err = favorites.Remove(ctx, 2, 3)
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		t.Errorf("second remove: got %v", err)
	}
}
