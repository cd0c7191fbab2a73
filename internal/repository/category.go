package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/mediavault/internal/model"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name or slug already exists")
)

type CategoryRepository interface {
	ByID(ctx context.Context, id int64) (*model.Category, error)
	All(ctx context.Context) ([]*model.Category, error)
	Create(ctx context.Context, input *model.CreateCategory) (*model.Category, error)
	Update(ctx context.Context, id int64, patch *model.CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ByID(ctx context.Context, id int64) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT * FROM categories WHERE id = $1`

	err := r.db.GetContext(ctx, category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (r *categoryRepository) All(ctx context.Context) ([]*model.Category, error) {
	categories := []*model.Category{}
	query := `SELECT * FROM categories ORDER BY id`

	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, input *model.CreateCategory) (*model.Category, error) {
	var id int64
	query := `INSERT INTO categories (name, slug, description, parent_id) VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.db.GetContext(ctx, &id, query, input.Name, input.Slug, input.Description, input.ParentID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}

	return r.ByID(ctx, id)
}

func (r *categoryRepository) Update(ctx context.Context, id int64, patch *model.CategoryPatch) (*model.Category, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	category := &model.Category{}
	err = tx.GetContext(ctx, category, `SELECT * FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(category)

	query := `UPDATE categories SET name = $1, slug = $2, description = $3, parent_id = $4 WHERE id = $5`
	_, err = tx.ExecContext(ctx, query, category.Name, category.Slug, category.Description, category.ParentID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
