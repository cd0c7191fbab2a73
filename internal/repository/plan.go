package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/mediavault/internal/model"
)

var ErrPlanNotFound = errors.New("subscription plan not found")

type PlanRepository interface {
	ByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error)
	All(ctx context.Context) ([]*model.SubscriptionPlan, error)
	Active(ctx context.Context) ([]*model.SubscriptionPlan, error)
	Create(ctx context.Context, input *model.CreateSubscriptionPlan) (*model.SubscriptionPlan, error)
	Update(ctx context.Context, id int64, patch *model.SubscriptionPlanPatch) (*model.SubscriptionPlan, error)
	Delete(ctx context.Context, id int64) error
}

type planRepository struct {
	db *sqlx.DB
}

func NewPlanRepository(db *sqlx.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	plan := &model.SubscriptionPlan{}
	query := `SELECT * FROM subscription_plans WHERE id = $1`

	err := r.db.GetContext(ctx, plan, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (r *planRepository) All(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	plans := []*model.SubscriptionPlan{}
	query := `SELECT * FROM subscription_plans ORDER BY id`

	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *planRepository) Active(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	plans := []*model.SubscriptionPlan{}
	query := `SELECT * FROM subscription_plans WHERE is_active = TRUE ORDER BY id`

	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *planRepository) Create(ctx context.Context, input *model.CreateSubscriptionPlan) (*model.SubscriptionPlan, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	features := input.Features
	if features == nil {
		features = model.StringList{}
	}

	var id int64
	query := `INSERT INTO subscription_plans (name, description, price, "interval", features, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.GetContext(ctx, &id, query, input.Name, input.Description, input.Price, input.Interval, features, active)
	if err != nil {
		return nil, err
	}

	return r.ByID(ctx, id)
}

func (r *planRepository) Update(ctx context.Context, id int64, patch *model.SubscriptionPlanPatch) (*model.SubscriptionPlan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	plan := &model.SubscriptionPlan{}
	err = tx.GetContext(ctx, plan, `SELECT * FROM subscription_plans WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(plan)

	query := `UPDATE subscription_plans SET name = $1, description = $2, price = $3, "interval" = $4, features = $5, is_active = $6 WHERE id = $7`
	_, err = tx.ExecContext(ctx, query, plan.Name, plan.Description, plan.Price, plan.Interval, plan.Features, plan.IsActive, id)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return plan, nil
}

func (r *planRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subscription_plans WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPlanNotFound
	}

	return nil
}
