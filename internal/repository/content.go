package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/mediavault/internal/model"
)

var ErrContentNotFound = errors.New("content not found")

// ContentStats are catalog aggregates over every row, published or not.
type ContentStats struct {
	Total      int   `db:"total"`
	Videos     int   `db:"videos"`
	Photos     int   `db:"photos"`
	Premium    int   `db:"premium"`
	Free       int   `db:"free"`
	TotalViews int64 `db:"total_views"`
}

func (s *ContentStats) Count() model.ContentCount {
	return model.ContentCount{
		Total:   s.Total,
		Videos:  s.Videos,
		Photos:  s.Photos,
		Premium: s.Premium,
		Free:    s.Free,
	}
}

// ContentRepository stores catalog items. Listings return items in id order
// unless they say otherwise.
type ContentRepository interface {
	ByID(ctx context.Context, id int64) (*model.Content, error)
	All(ctx context.Context) ([]*model.Content, error)
	Published(ctx context.Context) ([]*model.Content, error)
	ByCategory(ctx context.Context, label string) ([]*model.Content, error)
	ByType(ctx context.Context, contentType string) ([]*model.Content, error)
	ByAccessLevel(ctx context.Context, level string) ([]*model.Content, error)
	// MostViewed returns published items by views, highest first.
	MostViewed(ctx context.Context, limit int) ([]*model.Content, error)
	// Newest returns published items by creation time, newest first.
	Newest(ctx context.Context, limit int) ([]*model.Content, error)
	// Recent is Newest including unpublished items.
	Recent(ctx context.Context, limit int) ([]*model.Content, error)
	Create(ctx context.Context, input *model.CreateContent) (*model.Content, error)
	Update(ctx context.Context, id int64, patch *model.ContentPatch) (*model.Content, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*ContentStats, error)
}

type contentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ByID(ctx context.Context, id int64) (*model.Content, error) {
	content := &model.Content{}
	query := `SELECT * FROM content WHERE id = $1`

	err := r.db.GetContext(ctx, content, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}

	return content, nil
}

func (r *contentRepository) list(ctx context.Context, query string, args ...any) ([]*model.Content, error) {
	items := []*model.Content{}
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepository) All(ctx context.Context) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content ORDER BY id`)
}

func (r *contentRepository) Published(ctx context.Context) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content WHERE is_published = TRUE ORDER BY id`)
}

func (r *contentRepository) ByCategory(ctx context.Context, label string) ([]*model.Content, error) {
	// The LIKE narrows on the JSON text; exact membership is checked below
	query := `SELECT * FROM content WHERE is_published = TRUE AND categories LIKE $1 ORDER BY id`
	quoted, err := json.Marshal(label)
	if err != nil {
		return nil, err
	}

	candidates, err := r.list(ctx, query, "%"+string(quoted)+"%")
	if err != nil {
		return nil, err
	}

	items := make([]*model.Content, 0, len(candidates))
	for _, c := range candidates {
		if c.Categories.Contains(label) {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *contentRepository) ByType(ctx context.Context, contentType string) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content WHERE is_published = TRUE AND type = $1 ORDER BY id`, contentType)
}

func (r *contentRepository) ByAccessLevel(ctx context.Context, level string) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content WHERE is_published = TRUE AND access_level = $1 ORDER BY id`, level)
}

func (r *contentRepository) MostViewed(ctx context.Context, limit int) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content WHERE is_published = TRUE ORDER BY views DESC, id LIMIT $1`, limit)
}

func (r *contentRepository) Newest(ctx context.Context, limit int) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content WHERE is_published = TRUE ORDER BY created_at DESC, id LIMIT $1`, limit)
}

func (r *contentRepository) Recent(ctx context.Context, limit int) ([]*model.Content, error) {
	return r.list(ctx, `SELECT * FROM content ORDER BY created_at DESC, id LIMIT $1`, limit)
}

func (r *contentRepository) Create(ctx context.Context, input *model.CreateContent) (*model.Content, error) {
	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}
	categories := input.Categories
	if categories == nil {
		categories = model.StringList{}
	}
	now := time.Now().UTC()

	var id int64
	query := `INSERT INTO content (title, description, type, access_level, thumbnail_url, content_url, duration, views, categories, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.db.GetContext(ctx, &id, query,
		input.Title, input.Description, input.Type, input.AccessLevel, input.ThumbnailURL, input.ContentURL,
		input.Duration, input.Views, categories, published, now, now)
	if err != nil {
		return nil, err
	}

	return r.ByID(ctx, id)
}

func (r *contentRepository) Update(ctx context.Context, id int64, patch *model.ContentPatch) (*model.Content, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	content := &model.Content{}
	err = tx.GetContext(ctx, content, `SELECT * FROM content WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(content)
	content.UpdatedAt = time.Now().UTC()

	query := `UPDATE content SET title = $1, description = $2, type = $3, access_level = $4, thumbnail_url = $5,
		content_url = $6, duration = $7, categories = $8, is_published = $9, updated_at = $10
		WHERE id = $11`
	result, err := tx.ExecContext(ctx, query,
		content.Title, content.Description, content.Type, content.AccessLevel, content.ThumbnailURL,
		content.ContentURL, content.Duration, content.Categories, content.IsPublished, content.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrContentNotFound
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return content, nil
}

func (r *contentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM content WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrContentNotFound
	}

	return nil
}

// IncrementViews is a single statement so concurrent calls never lose an update.
func (r *contentRepository) IncrementViews(ctx context.Context, id int64) error {
	query := `UPDATE content SET views = views + 1 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrContentNotFound
	}

	return nil
}

func (r *contentRepository) Stats(ctx context.Context) (*ContentStats, error) {
	stats := &ContentStats{}
	query := `SELECT
		COUNT(*) AS total,
		CAST(COALESCE(SUM(CASE WHEN type = 'video' THEN 1 ELSE 0 END), 0) AS BIGINT) AS videos,
		CAST(COALESCE(SUM(CASE WHEN type = 'photo' THEN 1 ELSE 0 END), 0) AS BIGINT) AS photos,
		CAST(COALESCE(SUM(CASE WHEN access_level = 'premium' THEN 1 ELSE 0 END), 0) AS BIGINT) AS premium,
		CAST(COALESCE(SUM(CASE WHEN access_level = 'free' THEN 1 ELSE 0 END), 0) AS BIGINT) AS free,
		CAST(COALESCE(SUM(views), 0) AS BIGINT) AS total_views
		FROM content`

	err := r.db.GetContext(ctx, stats, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate content: %w", err)
	}

	return stats, nil
}
