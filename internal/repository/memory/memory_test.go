package memory_test

import (
	"context"
	"testing"

	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/repository/memory"
	"github.com/templui/mediavault/internal/repository/repotest"
)

func TestStore(t *testing.T) {
	repotest.Run(t, func(t *testing.T) *repository.Store {
		return memory.New()
	})
}

func TestNewSeeded(t *testing.T) {
	ctx := context.Background()

	store, err := memory.NewSeeded()
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	content, err := store.Content.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(content) != 12 {
		t.Fatalf("expected 12 seeded items, got %d", len(content))
	}

	for i, c := range content {
		if c.ID != int64(i+1) {
			t.Errorf("expected id %d, got %d", i+1, c.ID)
		}
		if !c.IsPublished {
			t.Errorf("seeded item %d is unpublished", c.ID)
		}
		if c.Views < 500 || c.Views >= 10500 {
			t.Errorf("seeded item %d has %d views, want [500, 10500)", c.ID, c.Views)
		}
	}

	if content[0].Title != "Professional Photography Techniques" {
		t.Errorf("unexpected first item %q", content[0].Title)
	}

	categories, err := store.Categories.All(ctx)
	if err != nil {
		t.Fatalf("Categories.All failed: %v", err)
	}
	if len(categories) != 5 {
		t.Errorf("expected 5 categories, got %d", len(categories))
	}

	plans, err := store.Plans.Active(ctx)
	if err != nil {
		t.Fatalf("Plans.Active failed: %v", err)
	}
	if len(plans) != 3 {
		t.Errorf("expected 3 plans, got %d", len(plans))
	}

	admin, err := store.Users.ByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}
	if !admin.IsAdmin || !admin.IsPremium {
		t.Errorf("expected seeded admin to be admin and premium: %+v", admin)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	ctx := context.Background()
	a := memory.New()
	b := memory.New()

	_, err := a.Content.Create(ctx, repotest.NewContent("Only in A"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	items, err := b.Content.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected second store to be empty, got %d items", len(items))
	}

	created, err := b.Content.Create(ctx, repotest.NewContent("First in B"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected sequences to be per store, got id %d", created.ID)
	}
}

func TestReturnedValuesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	created, err := store.Content.Create(ctx, repotest.NewContent("Original"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	created.Title = "Mutated"
	created.Categories[0] = "mutated"

	got, err := store.Content.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.Title != "Original" || !got.Categories.Contains("photography") {
		t.Errorf("store state changed through returned value: %+v", got)
	}
}
