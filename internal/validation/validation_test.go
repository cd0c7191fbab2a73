package validation_test

import (
	"errors"
	"testing"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/validation"
)

func validContent() *model.CreateContent {
	d := "12:45"
	return &model.CreateContent{
		Title:        "Professional Photography Techniques",
		Description:  "Learn the basics of professional outdoor photography",
		Type:         model.ContentTypeVideo,
		AccessLevel:  model.AccessLevelFree,
		ThumbnailURL: "https://images.example.com/thumb.jpg",
		ContentURL:   "https://example.com/videos/photography-techniques.mp4",
		Duration:     &d,
		Categories:   model.StringList{"photography"},
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	out := map[string]string{}
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestStructAcceptsValidContent(t *testing.T) {
	err := validation.Struct(validContent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructRejectsContent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *model.CreateContent)
		field  string
	}{
		{"missing title", func(c *model.CreateContent) { c.Title = "" }, "title"},
		{"blank description", func(c *model.CreateContent) { c.Description = "   " }, "description"},
		{"bad type", func(c *model.CreateContent) { c.Type = "audio" }, "type"},
		{"bad access level", func(c *model.CreateContent) { c.AccessLevel = "vip" }, "accessLevel"},
		{"thumbnail not a url", func(c *model.CreateContent) { c.ThumbnailURL = "not-a-url" }, "thumbnailUrl"},
		{"content not a url", func(c *model.CreateContent) { c.ContentURL = "videos/a.mp4" }, "contentUrl"},
		{"bad duration", func(c *model.CreateContent) { d := "twelve"; c.Duration = &d }, "duration"},
		{"empty category label", func(c *model.CreateContent) { c.Categories = model.StringList{""} }, "categories[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(c)

			fields := fieldsOf(t, validation.Struct(c))
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("expected error for field %q, got %v", tt.field, fields)
			}
		})
	}
}

func TestStructPatchOnlyChecksPresentFields(t *testing.T) {
	title := "New title"
	err := validation.Struct(&model.ContentPatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := "nope"
	fields := fieldsOf(t, validation.Struct(&model.ContentPatch{AccessLevel: &bad}))
	if _, ok := fields["accessLevel"]; !ok {
		t.Errorf("expected accessLevel error, got %v", fields)
	}
}

func TestStructPlanInterval(t *testing.T) {
	plan := &model.CreateSubscriptionPlan{
		Name:        "Weekly",
		Description: "Seven days",
		Price:       199,
		Interval:    "weekly",
	}

	fields := fieldsOf(t, validation.Struct(plan))
	if _, ok := fields["interval"]; !ok {
		t.Errorf("expected interval error, got %v", fields)
	}
}

func TestStructCategorySlug(t *testing.T) {
	err := validation.Struct(&model.CreateCategory{Name: "Lighting", Slug: "lighting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := fieldsOf(t, validation.Struct(&model.CreateCategory{Name: "Lighting", Slug: "Studio Lighting"}))
	if _, ok := fields["slug"]; !ok {
		t.Errorf("expected slug error, got %v", fields)
	}
}

func TestDecodeJSONRejectsNonIntegerPrice(t *testing.T) {
	var plan model.CreateSubscriptionPlan
	err := validation.DecodeJSON([]byte(`{"name":"Monthly","price":9.99}`), &plan)

	fields := fieldsOf(t, err)
	if fields["price"] != "must be of type integer" {
		t.Errorf("expected integer error for price, got %v", fields)
	}
}

func TestDecodeJSONRejectsMalformedBody(t *testing.T) {
	var c model.CreateContent
	fields := fieldsOf(t, validation.DecodeJSON([]byte(`{"title":`), &c))
	if _, ok := fields["body"]; !ok {
		t.Errorf("expected body error, got %v", fields)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"short", false},
		{"mypassword123", false},
		{"correct-horse-battery", true},
	}

	for _, tt := range tests {
		err := validation.ValidatePassword(tt.password)
		if (err == nil) != tt.ok {
			t.Errorf("ValidatePassword(%q) = %v, want ok=%v", tt.password, err, tt.ok)
		}
	}
}
