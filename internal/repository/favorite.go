package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/mediavault/internal/model"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository links users to content. A (user, content) pair is stored at most once.
type FavoriteRepository interface {
	// ByUser returns the user's favorited content, skipping unpublished items.
	ByUser(ctx context.Context, userID int64) ([]*model.Content, error)
	Add(ctx context.Context, input *model.CreateFavorite) (*model.Favorite, error)
	Remove(ctx context.Context, userID, contentID int64) error
}

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ByUser(ctx context.Context, userID int64) ([]*model.Content, error) {
	items := []*model.Content{}
	query := `SELECT c.* FROM content c
		JOIN favorites f ON f.content_id = c.id
		WHERE f.user_id = $1 AND c.is_published = TRUE
		ORDER BY f.id`

	err := r.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Add is idempotent: favoriting twice returns the existing row.
func (r *favoriteRepository) Add(ctx context.Context, input *model.CreateFavorite) (*model.Favorite, error) {
	query := `INSERT INTO favorites (user_id, content_id, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, content_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, input.UserID, input.ContentID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	favorite := &model.Favorite{}
	err = r.db.GetContext(ctx, favorite, `SELECT * FROM favorites WHERE user_id = $1 AND content_id = $2`, input.UserID, input.ContentID)
	if err != nil {
		return nil, err
	}

	return favorite, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, contentID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND content_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, contentID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
