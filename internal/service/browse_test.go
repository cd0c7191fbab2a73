package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/service"
)

func TestBrowseFreeVideoScenario(t *testing.T) {
	store := seededStore(t)
	browse := service.NewBrowseService(store.Content, false)
	ctx := context.Background()

	items, err := browse.Browse(ctx, service.ContentQuery{
		ContentType: model.AccessLevelFree,
		Type:        model.ContentTypeVideo,
		SortBy:      service.SortNewest,
	})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if !containsTitle(items, "Professional Photography Techniques") {
		t.Error("free videos sorted by newest should include Professional Photography Techniques")
	}

	items, err = browse.Browse(ctx, service.ContentQuery{ContentType: model.AccessLevelPremium})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if containsTitle(items, "Professional Photography Techniques") {
		t.Error("premium listing should not include a free item")
	}
}

func TestBrowseTypeAndAccessFilter(t *testing.T) {
	store := seededStore(t)
	createContent(t, store, validContent("Premium Photo"))
	browse := service.NewBrowseService(store.Content, false)

	items, err := browse.Browse(context.Background(), service.ContentQuery{
		Type:        model.ContentTypeVideo,
		ContentType: model.AccessLevelPremium,
	})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected premium videos in the seed data")
	}
	for _, c := range items {
		if c.Type != model.ContentTypeVideo || c.AccessLevel != model.AccessLevelPremium {
			t.Errorf("item %d has type=%s accessLevel=%s", c.ID, c.Type, c.AccessLevel)
		}
	}
}

func TestBrowseSortOrders(t *testing.T) {
	store := seededStore(t)
	browse := service.NewBrowseService(store.Content, false)
	ctx := context.Background()

	oldest, err := browse.Browse(ctx, service.ContentQuery{SortBy: service.SortOldest})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	for i := 1; i < len(oldest); i++ {
		if oldest[i].CreatedAt.Before(oldest[i-1].CreatedAt) {
			t.Errorf("oldest: item %d created before item %d", oldest[i].ID, oldest[i-1].ID)
		}
	}

	newest, err := browse.Browse(ctx, service.ContentQuery{SortBy: service.SortNewest})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	for i := 1; i < len(newest); i++ {
		if newest[i].CreatedAt.After(newest[i-1].CreatedAt) {
			t.Errorf("newest: item %d created after item %d", newest[i].ID, newest[i-1].ID)
		}
	}

	popular, err := browse.Browse(ctx, service.ContentQuery{})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	for i := 1; i < len(popular); i++ {
		if popular[i].Views > popular[i-1].Views {
			t.Errorf("popular: item %d has more views than item %d", popular[i].ID, popular[i-1].ID)
		}
	}
}

func TestBrowseSearchMatchesTitleOrDescription(t *testing.T) {
	store := seededStore(t)
	browse := service.NewBrowseService(store.Content, false)

	items, err := browse.Browse(context.Background(), service.ContentQuery{SearchTerm: "DRONE"})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Advanced Aerial Cinematography" {
		t.Errorf("search by description: got %d items", len(items))
	}

	items, err = browse.Browse(context.Background(), service.ContentQuery{SearchTerm: "lighting"})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	for _, c := range items {
		text := strings.ToLower(c.Title + " " + c.Description)
		if !strings.Contains(text, "lighting") {
			t.Errorf("item %q does not match the search term", c.Title)
		}
	}
}

func TestBrowseCategories(t *testing.T) {
	store := seededStore(t)
	browse := service.NewBrowseService(store.Content, false)
	ctx := context.Background()

	trending, err := browse.Browse(ctx, service.ContentQuery{Category: service.CategoryTrending})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(trending) != service.TrendingLimit {
		t.Errorf("trending: got %d items, want %d", len(trending), service.TrendingLimit)
	}

	fresh, err := browse.Browse(ctx, service.ContentQuery{Category: service.CategoryNew})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(fresh) != service.NewLimit {
		t.Errorf("new: got %d items, want %d", len(fresh), service.NewLimit)
	}

	editing, err := browse.Browse(ctx, service.ContentQuery{Category: "editing"})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(editing) != 4 {
		t.Errorf("editing: got %d items, want 4", len(editing))
	}
	for _, c := range editing {
		if !c.Categories.Contains("editing") {
			t.Errorf("item %q is not labeled editing", c.Title)
		}
	}
}

func TestBrowseUnpublishedItems(t *testing.T) {
	store := seededStore(t)
	hidden := createContent(t, store, unpublished(validContent("Hidden Draft")))
	ctx := context.Background()

	published := service.NewBrowseService(store.Content, false)
	for _, q := range []service.ContentQuery{
		{},
		{Category: service.CategoryTrending},
		{Category: service.CategoryNew},
		{Category: "lighting"},
		{SearchTerm: "hidden"},
	} {
		items, err := published.Browse(ctx, q)
		if err != nil {
			t.Fatalf("Browse(%+v) failed: %v", q, err)
		}
		if containsTitle(items, hidden.Title) {
			t.Errorf("Browse(%+v) returned an unpublished item", q)
		}
	}

	// The unfiltered branch returns everything when configured to
	all := service.NewBrowseService(store.Content, true)
	items, err := all.Browse(ctx, service.ContentQuery{})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if !containsTitle(items, hidden.Title) {
		t.Error("unfiltered browse with includeUnpublished should return the draft")
	}

	items, err = all.Browse(ctx, service.ContentQuery{Category: "lighting"})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if containsTitle(items, hidden.Title) {
		t.Error("category browse must stay published-only")
	}
}

func TestBrowseIgnoresUnknownAccessLevel(t *testing.T) {
	store := seededStore(t)
	browse := service.NewBrowseService(store.Content, false)
	ctx := context.Background()

	everything, err := browse.Browse(ctx, service.ContentQuery{})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(everything) != 12 {
		t.Fatalf("unfiltered browse returned %d items, want 12", len(everything))
	}

	for _, contentType := range []string{"all", "vip", "FREE"} {
		items, err := browse.Browse(ctx, service.ContentQuery{ContentType: contentType})
		if err != nil {
			t.Fatalf("Browse(contentType=%s) failed: %v", contentType, err)
		}
		if len(items) != len(everything) {
			t.Errorf("contentType=%s returned %d items, want %d", contentType, len(items), len(everything))
		}
	}

	items, err := browse.Browse(ctx, service.ContentQuery{ContentType: "all", Type: model.ContentTypeVideo, SearchTerm: "lighting"})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if !containsTitle(items, "Studio Lighting Masterclass") || !containsTitle(items, "Studio Interview Lighting") {
		t.Errorf("contentType=all should not drop matches, got %d items", len(items))
	}
}
