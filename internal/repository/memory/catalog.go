package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

type categoryRepository struct {
	s *state
}

func (r *categoryRepository) ByID(_ context.Context, id int64) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return c.Clone(), nil
}

func (r *categoryRepository) All(_ context.Context) ([]*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, func(a, b *model.Category) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// conflicts reports whether another category already uses name or slug.
func (r *categoryRepository) conflicts(id int64, name, slug string) bool {
	for _, c := range r.s.categories {
		if c.ID != id && (c.Name == name || c.Slug == slug) {
			return true
		}
	}
	return false
}

func (r *categoryRepository) Create(_ context.Context, input *model.CreateCategory) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.conflicts(0, input.Name, input.Slug) {
		return nil, repository.ErrDuplicateCategory
	}

	c := &model.Category{
		ID:   next(&r.s.seq.category),
		Name: input.Name,
		Slug: input.Slug,
	}
	(&model.CategoryPatch{Description: input.Description, ParentID: input.ParentID}).Apply(c)
	r.s.categories[c.ID] = c

	return c.Clone(), nil
}

func (r *categoryRepository) Update(_ context.Context, id int64, patch *model.CategoryPatch) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	updated := c.Clone()
	patch.Apply(updated)
	if r.conflicts(id, updated.Name, updated.Slug) {
		return nil, repository.ErrDuplicateCategory
	}
	r.s.categories[id] = updated

	return updated.Clone(), nil
}

func (r *categoryRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(r.s.categories, id)
	return nil
}

type planRepository struct {
	s *state
}

func (r *planRepository) ByID(_ context.Context, id int64) (*model.SubscriptionPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.plans[id]
	if !ok {
		return nil, repository.ErrPlanNotFound
	}
	return p.Clone(), nil
}

func (r *planRepository) list(keep func(p *model.SubscriptionPlan) bool) []*model.SubscriptionPlan {
	out := make([]*model.SubscriptionPlan, 0, len(r.s.plans))
	for _, p := range r.s.plans {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *model.SubscriptionPlan) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (r *planRepository) All(_ context.Context) ([]*model.SubscriptionPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(func(*model.SubscriptionPlan) bool { return true }), nil
}

func (r *planRepository) Active(_ context.Context) ([]*model.SubscriptionPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(func(p *model.SubscriptionPlan) bool { return p.IsActive }), nil
}

func (r *planRepository) Create(_ context.Context, input *model.CreateSubscriptionPlan) (*model.SubscriptionPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	p := &model.SubscriptionPlan{
		ID:          next(&r.s.seq.plan),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Interval:    input.Interval,
		Features:    input.Features.Clone(),
		IsActive:    active,
	}
	r.s.plans[p.ID] = p

	return p.Clone(), nil
}

func (r *planRepository) Update(_ context.Context, id int64, patch *model.SubscriptionPlanPatch) (*model.SubscriptionPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.plans[id]
	if !ok {
		return nil, repository.ErrPlanNotFound
	}
	patch.Apply(p)
	return p.Clone(), nil
}

func (r *planRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.plans[id]; !ok {
		return repository.ErrPlanNotFound
	}
	delete(r.s.plans, id)
	return nil
}
