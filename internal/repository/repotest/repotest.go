// Package repotest checks a repository.Store implementation against the
// behavior every variant must share.
package repotest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

// Run exercises an empty store returned by newStore. newStore is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) *repository.Store) {
	t.Run("ContentCRUD", func(t *testing.T) { testContentCRUD(t, newStore(t)) })
	t.Run("ContentNotFound", func(t *testing.T) { testContentNotFound(t, newStore(t)) })
	t.Run("PublishedFilters", func(t *testing.T) { testPublishedFilters(t, newStore(t)) })
	t.Run("Listings", func(t *testing.T) { testListings(t, newStore(t)) })
	t.Run("ConcurrentIncrements", func(t *testing.T) { testConcurrentIncrements(t, newStore(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStore(t)) })
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Categories", func(t *testing.T) { testCategories(t, newStore(t)) })
	t.Run("Plans", func(t *testing.T) { testPlans(t, newStore(t)) })
	t.Run("Favorites", func(t *testing.T) { testFavorites(t, newStore(t)) })
}

// NewContent returns a valid create shape with the given overrides applied.
func NewContent(title string, opts ...func(c *model.CreateContent)) *model.CreateContent {
	c := &model.CreateContent{
		Title:        title,
		Description:  title + " description",
		Type:         model.ContentTypeVideo,
		AccessLevel:  model.AccessLevelFree,
		ThumbnailURL: "https://images.example.com/thumb.jpg",
		ContentURL:   "https://example.com/videos/item.mp4",
		Categories:   model.StringList{"photography"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func Unpublished(c *model.CreateContent) {
	published := false
	c.IsPublished = &published
}

func WithViews(n int64) func(c *model.CreateContent) {
	return func(c *model.CreateContent) { c.Views = n }
}

func mustCreate(t *testing.T, store *repository.Store, input *model.CreateContent) *model.Content {
	t.Helper()
	c, err := store.Content.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", input.Title, err)
	}
	return c
}

func ids(items []*model.Content) []int64 {
	out := make([]int64, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func testContentCRUD(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	duration := "12:45"
	created := mustCreate(t, store, NewContent("Lens Guide", func(c *model.CreateContent) {
		c.Duration = &duration
		c.Categories = model.StringList{"equipment", "photography"}
	}))

	if created.ID != 1 {
		t.Errorf("expected first id 1, got %d", created.ID)
	}
	if !created.IsPublished {
		t.Error("expected isPublished to default to true")
	}
	if created.Views != 0 {
		t.Errorf("expected 0 views, got %d", created.Views)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := store.Content.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.Title != "Lens Guide" || got.Duration == nil || *got.Duration != "12:45" {
		t.Errorf("unexpected content: %+v", got)
	}
	if !equalStrings(got.Categories, []string{"equipment", "photography"}) {
		t.Errorf("expected categories in order, got %v", got.Categories)
	}

	title := "Camera Lens Guide"
	premium := model.AccessLevelPremium
	updated, err := store.Content.Update(ctx, created.ID, &model.ContentPatch{Title: &title, AccessLevel: &premium})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != title || updated.AccessLevel != premium {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Description != created.Description {
		t.Errorf("unpatched field changed: %q", updated.Description)
	}
	if !updated.CreatedAt.Equal(got.CreatedAt) {
		t.Errorf("createdAt changed from %v to %v", got.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(got.UpdatedAt) {
		t.Errorf("updatedAt went backwards: %v -> %v", got.UpdatedAt, updated.UpdatedAt)
	}

	err = store.Content.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = store.Content.ByID(ctx, created.ID)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound after delete, got %v", err)
	}

	second := mustCreate(t, store, NewContent("Next"))
	if second.ID != 2 {
		t.Errorf("expected ids not to be reused, got %d", second.ID)
	}
}

func testContentNotFound(t *testing.T, store *repository.Store) {
	ctx := context.Background()
	title := "x"

	_, err := store.Content.ByID(ctx, 42)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("ByID: expected ErrContentNotFound, got %v", err)
	}

	_, err = store.Content.Update(ctx, 42, &model.ContentPatch{Title: &title})
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("Update: expected ErrContentNotFound, got %v", err)
	}

	err = store.Content.Delete(ctx, 42)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("Delete: expected ErrContentNotFound, got %v", err)
	}

	err = store.Content.IncrementViews(ctx, 42)
	if !errors.Is(err, repository.ErrContentNotFound) {
		t.Errorf("IncrementViews: expected ErrContentNotFound, got %v", err)
	}

	all, err := store.Content.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected failed operations to leave the store empty, got %d items", len(all))
	}
}

func testPublishedFilters(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	a := mustCreate(t, store, NewContent("A", func(c *model.CreateContent) {
		c.Categories = model.StringList{"editing", "videography"}
	}))
	mustCreate(t, store, NewContent("Hidden", Unpublished, func(c *model.CreateContent) {
		c.Categories = model.StringList{"editing"}
	}))
	photo := mustCreate(t, store, NewContent("Photo", func(c *model.CreateContent) {
		c.Type = model.ContentTypePhoto
		c.AccessLevel = model.AccessLevelPremium
		c.Categories = model.StringList{"editing-advanced"}
	}))

	published, err := store.Content.Published(ctx)
	if err != nil {
		t.Fatalf("Published failed: %v", err)
	}
	if !equalIDs(ids(published), []int64{a.ID, photo.ID}) {
		t.Errorf("Published = %v", ids(published))
	}

	all, err := store.Content.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected All to include unpublished items, got %d", len(all))
	}

	// "editing" must not match the "editing-advanced" label
	byCategory, err := store.Content.ByCategory(ctx, "editing")
	if err != nil {
		t.Fatalf("ByCategory failed: %v", err)
	}
	if !equalIDs(ids(byCategory), []int64{a.ID}) {
		t.Errorf("ByCategory(editing) = %v", ids(byCategory))
	}

	byType, err := store.Content.ByType(ctx, model.ContentTypePhoto)
	if err != nil {
		t.Fatalf("ByType failed: %v", err)
	}
	if !equalIDs(ids(byType), []int64{photo.ID}) {
		t.Errorf("ByType(photo) = %v", ids(byType))
	}

	byLevel, err := store.Content.ByAccessLevel(ctx, model.AccessLevelFree)
	if err != nil {
		t.Fatalf("ByAccessLevel failed: %v", err)
	}
	if !equalIDs(ids(byLevel), []int64{a.ID}) {
		t.Errorf("ByAccessLevel(free) = %v", ids(byLevel))
	}
}

func testListings(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	mustCreate(t, store, NewContent("Low", WithViews(10)))
	high := mustCreate(t, store, NewContent("High", WithViews(300)))
	mustCreate(t, store, NewContent("Hidden", Unpublished, WithViews(9000)))
	mid := mustCreate(t, store, NewContent("Mid", WithViews(120)))

	top, err := store.Content.MostViewed(ctx, 2)
	if err != nil {
		t.Fatalf("MostViewed failed: %v", err)
	}
	if !equalIDs(ids(top), []int64{high.ID, mid.ID}) {
		t.Errorf("MostViewed(2) = %v", ids(top))
	}

	newest, err := store.Content.Newest(ctx, 10)
	if err != nil {
		t.Fatalf("Newest failed: %v", err)
	}
	if len(newest) != 3 {
		t.Fatalf("expected 3 published items, got %d", len(newest))
	}
	for _, c := range newest {
		if !c.IsPublished {
			t.Errorf("Newest returned unpublished item %d", c.ID)
		}
	}

	recent, err := store.Content.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("expected Recent to include unpublished items, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("Recent not ordered newest first at %d", i)
		}
	}
}

func testConcurrentIncrements(t *testing.T, store *repository.Store) {
	ctx := context.Background()
	c := mustCreate(t, store, NewContent("Popular", WithViews(500)))

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Content.IncrementViews(ctx, c.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("IncrementViews failed: %v", err)
		}
	}

	got, err := store.Content.ByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.Views != 500+workers {
		t.Errorf("expected %d views, got %d", 500+workers, got.Views)
	}
}

func testStats(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	mustCreate(t, store, NewContent("Free video", WithViews(100)))
	mustCreate(t, store, NewContent("Premium photo", WithViews(50), func(c *model.CreateContent) {
		c.Type = model.ContentTypePhoto
		c.AccessLevel = model.AccessLevelPremium
	}))
	mustCreate(t, store, NewContent("Hidden premium video", Unpublished, WithViews(7), func(c *model.CreateContent) {
		c.AccessLevel = model.AccessLevelPremium
	}))

	stats, err := store.Content.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	want := model.ContentCount{Total: 3, Videos: 2, Photos: 1, Premium: 2, Free: 1}
	if stats.Count() != want {
		t.Errorf("Count() = %+v, want %+v", stats.Count(), want)
	}
	if stats.TotalViews != 157 {
		t.Errorf("expected 157 total views, got %d", stats.TotalViews)
	}
}

func testUsers(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	email := "alice@example.com"
	alice, err := store.Users.Create(ctx, &model.CreateUser{Username: "alice", Password: "hash", Email: &email})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if alice.ID != 1 || alice.IsPremium || alice.IsAdmin {
		t.Errorf("unexpected user: %+v", alice)
	}

	_, err = store.Users.Create(ctx, &model.CreateUser{Username: "alice", Password: "other"})
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}

	got, err := store.Users.ByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}
	if got.PasswordHash != "hash" || got.Email == nil || *got.Email != email {
		t.Errorf("unexpected user: %+v", got)
	}

	_, err = store.Users.ByUsername(ctx, "bob")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	premium := true
	monthly := model.PlanIntervalMonthly
	updated, err := store.Users.Update(ctx, alice.ID, &model.UserPatch{IsPremium: &premium, SubscriptionType: &monthly})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.IsPremium || updated.SubscriptionType == nil || *updated.SubscriptionType != monthly {
		t.Errorf("patch not applied: %+v", updated)
	}

	count, err := store.Users.CountPremium(ctx)
	if err != nil {
		t.Fatalf("CountPremium failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 premium user, got %d", count)
	}

	_, err = store.Users.Update(ctx, 99, &model.UserPatch{IsPremium: &premium})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func testCategories(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	description := "Lighting techniques and setups"
	lighting, err := store.Categories.Create(ctx, &model.CreateCategory{Name: "Lighting", Slug: "lighting", Description: &description})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = store.Categories.Create(ctx, &model.CreateCategory{Name: "Lighting 2", Slug: "lighting"})
	if !errors.Is(err, repository.ErrDuplicateCategory) {
		t.Errorf("expected ErrDuplicateCategory, got %v", err)
	}

	child, err := store.Categories.Create(ctx, &model.CreateCategory{Name: "Studio", Slug: "studio", ParentID: &lighting.ID})
	if err != nil {
		t.Fatalf("Create child failed: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != lighting.ID {
		t.Errorf("expected parent %d, got %v", lighting.ID, child.ParentID)
	}

	name := "Studio Lighting"
	updated, err := store.Categories.Update(ctx, child.ID, &model.CategoryPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != name || updated.Slug != "studio" {
		t.Errorf("unexpected category: %+v", updated)
	}

	all, err := store.Categories.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != lighting.ID {
		t.Errorf("unexpected categories: %+v", all)
	}

	err = store.Categories.Delete(ctx, child.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	err = store.Categories.Delete(ctx, child.ID)
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func testPlans(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	monthly, err := store.Plans.Create(ctx, &model.CreateSubscriptionPlan{
		Name:        "Monthly",
		Description: "Monthly billing",
		Price:       999,
		Interval:    model.PlanIntervalMonthly,
		Features:    model.StringList{"HD video quality", "New premium content weekly"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !monthly.IsActive {
		t.Error("expected isActive to default to true")
	}
	if !equalStrings(monthly.Features, []string{"HD video quality", "New premium content weekly"}) {
		t.Errorf("unexpected features: %v", monthly.Features)
	}

	inactive := false
	_, err = store.Plans.Create(ctx, &model.CreateSubscriptionPlan{
		Name:        "Legacy",
		Description: "Retired plan",
		Price:       500,
		Interval:    model.PlanIntervalMonthly,
		IsActive:    &inactive,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	active, err := store.Plans.Active(ctx)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != monthly.ID {
		t.Errorf("unexpected active plans: %+v", active)
	}

	all, err := store.Plans.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 plans, got %d", len(all))
	}

	price := 1099
	updated, err := store.Plans.Update(ctx, monthly.ID, &model.SubscriptionPlanPatch{Price: &price})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Price != price || updated.Name != "Monthly" {
		t.Errorf("unexpected plan: %+v", updated)
	}

	err = store.Plans.Delete(ctx, 99)
	if !errors.Is(err, repository.ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
}

func testFavorites(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	user, err := store.Users.Create(ctx, &model.CreateUser{Username: "fan", Password: "hash"})
	if err != nil {
		t.Fatalf("Create user failed: %v", err)
	}
	visible := mustCreate(t, store, NewContent("Visible"))
	hidden := mustCreate(t, store, NewContent("Hidden", Unpublished))

	first, err := store.Favorites.Add(ctx, &model.CreateFavorite{UserID: user.ID, ContentID: visible.ID})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	again, err := store.Favorites.Add(ctx, &model.CreateFavorite{UserID: user.ID, ContentID: visible.ID})
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected Add to be idempotent, got ids %d and %d", first.ID, again.ID)
	}

	_, err = store.Favorites.Add(ctx, &model.CreateFavorite{UserID: user.ID, ContentID: hidden.ID})
	if err != nil {
		t.Fatalf("Add hidden failed: %v", err)
	}

	favs, err := store.Favorites.ByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ByUser failed: %v", err)
	}
	if !equalIDs(ids(favs), []int64{visible.ID}) {
		t.Errorf("ByUser = %v, want only published item", ids(favs))
	}

	err = store.Favorites.Remove(ctx, user.ID, visible.ID)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	err = store.Favorites.Remove(ctx, user.ID, visible.ID)
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		t.Errorf("expected ErrFavoriteNotFound, got %v", err)
	}

	// Deleting content drops favorites that point at it
	err = store.Content.Delete(ctx, hidden.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	err = store.Favorites.Remove(ctx, user.ID, hidden.ID)
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		t.Errorf("expected favorite to be gone with its content, got %v", err)
	}
}

func equalStrings(got model.StringList, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
