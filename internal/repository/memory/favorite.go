package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

type favoriteRepository struct {
	s *state
}

func (r *favoriteRepository) ByUser(_ context.Context, userID int64) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	favs := make([]*model.Favorite, 0)
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			favs = append(favs, f)
		}
	}
	slices.SortFunc(favs, func(a, b *model.Favorite) int { return cmp.Compare(a.ID, b.ID) })

	items := make([]*model.Content, 0, len(favs))
	for _, f := range favs {
		c, ok := r.s.content[f.ContentID]
		if ok && c.IsPublished {
			items = append(items, c.Clone())
		}
	}
	return items, nil
}

func (r *favoriteRepository) Add(_ context.Context, input *model.CreateFavorite) (*model.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, f := range r.s.favorites {
		if f.UserID == input.UserID && f.ContentID == input.ContentID {
			out := *f
			return &out, nil
		}
	}

	f := &model.Favorite{
		ID:        next(&r.s.seq.favorite),
		UserID:    input.UserID,
		ContentID: input.ContentID,
		CreatedAt: r.s.now(),
	}
	r.s.favorites[f.ID] = f

	out := *f
	return &out, nil
}

func (r *favoriteRepository) Remove(_ context.Context, userID, contentID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, f := range r.s.favorites {
		if f.UserID == userID && f.ContentID == contentID {
			delete(r.s.favorites, id)
			return nil
		}
	}
	return repository.ErrFavoriteNotFound
}
