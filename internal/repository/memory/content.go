package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

type contentRepository struct {
	s *state
}

// collect returns clones of the items accepted by keep, in id order.
func (r *contentRepository) collect(keep func(c *model.Content) bool) []*model.Content {
	ids := make([]int64, 0, len(r.s.content))
	for id := range r.s.content {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	items := make([]*model.Content, 0, len(ids))
	for _, id := range ids {
		c := r.s.content[id]
		if keep(c) {
			items = append(items, c.Clone())
		}
	}
	return items
}

func published(c *model.Content) bool { return c.IsPublished }

func limit(items []*model.Content, n int) []*model.Content {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func (r *contentRepository) ByID(_ context.Context, id int64) (*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.content[id]
	if !ok {
		return nil, repository.ErrContentNotFound
	}
	return c.Clone(), nil
}

func (r *contentRepository) All(_ context.Context) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(*model.Content) bool { return true }), nil
}

func (r *contentRepository) Published(_ context.Context) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(published), nil
}

func (r *contentRepository) ByCategory(_ context.Context, label string) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(c *model.Content) bool {
		return c.IsPublished && c.Categories.Contains(label)
	}), nil
}

func (r *contentRepository) ByType(_ context.Context, contentType string) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(c *model.Content) bool {
		return c.IsPublished && c.Type == contentType
	}), nil
}

func (r *contentRepository) ByAccessLevel(_ context.Context, level string) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(c *model.Content) bool {
		return c.IsPublished && c.AccessLevel == level
	}), nil
}

func (r *contentRepository) MostViewed(_ context.Context, n int) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.collect(published)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Views > items[j].Views })
	return limit(items, n), nil
}

func (r *contentRepository) Newest(_ context.Context, n int) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.collect(published)
	sortNewest(items)
	return limit(items, n), nil
}

func (r *contentRepository) Recent(_ context.Context, n int) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.collect(func(*model.Content) bool { return true })
	sortNewest(items)
	return limit(items, n), nil
}

func sortNewest(items []*model.Content) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
}

func (r *contentRepository) Create(_ context.Context, input *model.CreateContent) (*model.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}
	var duration *string
	if input.Duration != nil {
		d := *input.Duration
		duration = &d
	}
	now := r.s.now()

	c := &model.Content{
		ID:           next(&r.s.seq.content),
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		AccessLevel:  input.AccessLevel,
		ThumbnailURL: input.ThumbnailURL,
		ContentURL:   input.ContentURL,
		Duration:     duration,
		Views:        input.Views,
		Categories:   input.Categories.Clone(),
		IsPublished:  isPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.s.content[c.ID] = c

	return c.Clone(), nil
}

func (r *contentRepository) Update(_ context.Context, id int64, patch *model.ContentPatch) (*model.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.content[id]
	if !ok {
		return nil, repository.ErrContentNotFound
	}

	patch.Apply(c)
	c.UpdatedAt = r.s.now()

	return c.Clone(), nil
}

// Delete also drops favorites pointing at the item, matching the SQL cascade.
func (r *contentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.content[id]; !ok {
		return repository.ErrContentNotFound
	}
	delete(r.s.content, id)

	for fid, f := range r.s.favorites {
		if f.ContentID == id {
			delete(r.s.favorites, fid)
		}
	}
	return nil
}

func (r *contentRepository) IncrementViews(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.content[id]
	if !ok {
		return repository.ErrContentNotFound
	}
	c.Views++
	return nil
}

func (r *contentRepository) Stats(_ context.Context) (*repository.ContentStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &repository.ContentStats{}
	for _, c := range r.s.content {
		stats.Total++
		stats.TotalViews += c.Views
		switch c.Type {
		case model.ContentTypeVideo:
			stats.Videos++
		case model.ContentTypePhoto:
			stats.Photos++
		}
		switch c.AccessLevel {
		case model.AccessLevelPremium:
			stats.Premium++
		case model.AccessLevelFree:
			stats.Free++
		}
	}
	return stats, nil
}
