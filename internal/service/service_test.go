package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/repository/memory"
)

func seededStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := memory.NewSeeded()
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	return store
}

func createContent(t *testing.T, store *repository.Store, input *model.CreateContent) *model.Content {
	t.Helper()
	c, err := store.Content.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", input.Title, err)
	}
	return c
}

func validContent(title string) *model.CreateContent {
	duration := "4:05"
	return &model.CreateContent{
		Title:        title,
		Description:  "A short description",
		Type:         model.ContentTypePhoto,
		AccessLevel:  model.AccessLevelPremium,
		ThumbnailURL: "https://images.example.com/thumb.jpg",
		ContentURL:   "https://example.com/photos/item.jpg",
		Duration:     &duration,
		Categories:   model.StringList{"lighting", "photography"},
	}
}

func unpublished(c *model.CreateContent) *model.CreateContent {
	published := false
	c.IsPublished = &published
	return c
}

func containsTitle(items []*model.Content, title string) bool {
	for _, c := range items {
		if c.Title == title {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func mustNotBeZero(t *testing.T, name string, ts time.Time) {
	t.Helper()
	if ts.IsZero() {
		t.Errorf("%s is zero", name)
	}
}
