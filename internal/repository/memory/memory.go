// Package memory is an in-process repository.Store. Nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/seed"
)

// state is shared by every repository handed out by one store so that
// cross-entity reads (favorites joined to content) see a consistent view.
type state struct {
	mu sync.RWMutex

	users      map[int64]*model.User
	content    map[int64]*model.Content
	categories map[int64]*model.Category
	plans      map[int64]*model.SubscriptionPlan
	favorites  map[int64]*model.Favorite

	seq struct {
		user, content, category, plan, favorite int64
	}

	now func() time.Time
}

// New returns an empty store. Each entity's ids start at 1.
func New() *repository.Store {
	s := &state{
		users:      make(map[int64]*model.User),
		content:    make(map[int64]*model.Content),
		categories: make(map[int64]*model.Category),
		plans:      make(map[int64]*model.SubscriptionPlan),
		favorites:  make(map[int64]*model.Favorite),
		now:        func() time.Time { return time.Now().UTC() },
	}

	return &repository.Store{
		Users:      &userRepository{s: s},
		Content:    &contentRepository{s: s},
		Categories: &categoryRepository{s: s},
		Plans:      &planRepository{s: s},
		Favorites:  &favoriteRepository{s: s},
	}
}

func next(counter *int64) int64 {
	*counter++
	return *counter
}

// NewSeeded returns a store preloaded with the demo dataset.
func NewSeeded() (*repository.Store, error) {
	store := New()
	err := seed.Load(context.Background(), store)
	if err != nil {
		return nil, err
	}
	return store, nil
}
