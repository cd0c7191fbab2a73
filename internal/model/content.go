package model

import (
	"time"
)

const (
	ContentTypeVideo = "video"
	ContentTypePhoto = "photo"
)

const (
	AccessLevelFree    = "free"
	AccessLevelPremium = "premium"
)

type Content struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	Type         string     `db:"type" json:"type"`
	AccessLevel  string     `db:"access_level" json:"accessLevel"`
	ThumbnailURL string     `db:"thumbnail_url" json:"thumbnailUrl"`
	ContentURL   string     `db:"content_url" json:"contentUrl"`
	Duration     *string    `db:"duration" json:"duration"`
	Views        int64      `db:"views" json:"views"`
	Categories   StringList `db:"categories" json:"categories"`
	IsPublished  bool       `db:"is_published" json:"isPublished"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

func (c *Content) IsPremium() bool {
	return c.AccessLevel == AccessLevelPremium
}

// Clone returns a deep copy so callers can't mutate stored state.
func (c *Content) Clone() *Content {
	out := *c
	out.Categories = c.Categories.Clone()
	if c.Duration != nil {
		d := *c.Duration
		out.Duration = &d
	}
	return &out
}

// CreateContent is the validated input shape for new content.
type CreateContent struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	Type         string     `json:"type" validate:"required,oneof=video photo"`
	AccessLevel  string     `json:"accessLevel" validate:"required,oneof=free premium"`
	ThumbnailURL string     `json:"thumbnailUrl" validate:"required,url"`
	ContentURL   string     `json:"contentUrl" validate:"required,url"`
	Duration     *string    `json:"duration" validate:"omitempty,clock"`
	Categories   StringList `json:"categories" validate:"omitempty,dive,required"`
	IsPublished  *bool      `json:"isPublished"`

	// Views seeds the counter; requests can't set it.
	Views int64 `json:"-"`
}

// ContentPatch carries a partial update; nil fields are left untouched.
type ContentPatch struct {
	Title        *string     `json:"title" validate:"omitempty,min=1"`
	Description  *string     `json:"description" validate:"omitempty,min=1"`
	Type         *string     `json:"type" validate:"omitempty,oneof=video photo"`
	AccessLevel  *string     `json:"accessLevel" validate:"omitempty,oneof=free premium"`
	ThumbnailURL *string     `json:"thumbnailUrl" validate:"omitempty,url"`
	ContentURL   *string     `json:"contentUrl" validate:"omitempty,url"`
	Duration     *string     `json:"duration" validate:"omitempty,clock"`
	Categories   *StringList `json:"categories" validate:"omitempty,dive,required"`
	IsPublished  *bool       `json:"isPublished"`
}

// Apply copies the set fields of p onto c. UpdatedAt is left to the caller.
func (p *ContentPatch) Apply(c *Content) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.AccessLevel != nil {
		c.AccessLevel = *p.AccessLevel
	}
	if p.ThumbnailURL != nil {
		c.ThumbnailURL = *p.ThumbnailURL
	}
	if p.ContentURL != nil {
		c.ContentURL = *p.ContentURL
	}
	if p.Duration != nil {
		d := *p.Duration
		c.Duration = &d
	}
	if p.Categories != nil {
		c.Categories = p.Categories.Clone()
	}
	if p.IsPublished != nil {
		c.IsPublished = *p.IsPublished
	}
}

// ContentCount partitions the catalog by type and access level.
type ContentCount struct {
	Total   int `json:"total"`
	Videos  int `json:"videos"`
	Photos  int `json:"photos"`
	Premium int `json:"premium"`
	Free    int `json:"free"`
}

type AdminStats struct {
	TotalViews     int64        `json:"totalViews"`
	PremiumMembers int          `json:"premiumMembers"`
	ContentCount   ContentCount `json:"contentCount"`
	RecentContent  []*Content   `json:"recentContent"`
}
