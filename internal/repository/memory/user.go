package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

type userRepository struct {
	s *state
}

func (r *userRepository) ByID(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *userRepository) ByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *userRepository) All(_ context.Context) ([]*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u.Clone())
	}
	slices.SortFunc(users, func(a, b *model.User) int { return cmp.Compare(a.ID, b.ID) })
	return users, nil
}

func (r *userRepository) Create(_ context.Context, input *model.CreateUser) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == input.Username {
			return nil, repository.ErrDuplicateUsername
		}
	}

	u := &model.User{
		ID:           next(&r.s.seq.user),
		Username:     input.Username,
		PasswordHash: input.Password,
		IsAdmin:      input.IsAdmin,
		IsPremium:    input.IsPremium,
		CreatedAt:    r.s.now(),
	}
	// Apply copies the optional pointers so the caller's input isn't aliased
	(&model.UserPatch{
		Email:              input.Email,
		SubscriptionType:   input.SubscriptionType,
		SubscriptionExpiry: input.SubscriptionExpiry,
	}).Apply(u)
	r.s.users[u.ID] = u

	return u.Clone(), nil
}

func (r *userRepository) Update(_ context.Context, id int64, patch *model.UserPatch) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	patch.Apply(u)
	return u.Clone(), nil
}

func (r *userRepository) CountPremium(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, u := range r.s.users {
		if u.IsPremium {
			count++
		}
	}
	return count, nil
}
