package seed

import (
	"context"
	"fmt"

	"github.com/templui/mediavault/internal/repository"
)

// Load inserts the demo dataset into an empty store.
func Load(ctx context.Context, store *repository.Store) error {
	for _, u := range Users() {
		_, err := store.Users.Create(ctx, u)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}

	for _, c := range Categories() {
		_, err := store.Categories.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
		}
	}

	for _, p := range Plans() {
		_, err := store.Plans.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", p.Name, err)
		}
	}

	for _, c := range Content() {
		_, err := store.Content.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to seed content %q: %w", c.Title, err)
		}
	}

	return nil
}
