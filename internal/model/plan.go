package model

import "fmt"

const (
	PlanIntervalMonthly  = "monthly"
	PlanIntervalAnnually = "annually"
	PlanIntervalLifetime = "lifetime"
)

type SubscriptionPlan struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Price       int        `db:"price" json:"price"` // minor currency units
	Interval    string     `db:"interval" json:"interval"`
	Features    StringList `db:"features" json:"features"`
	IsActive    bool       `db:"is_active" json:"isActive"`
}

func (p *SubscriptionPlan) IsRecurring() bool {
	return p.Interval != PlanIntervalLifetime
}

func (p *SubscriptionPlan) FormatPrice() string {
	suffix := ""
	switch p.Interval {
	case PlanIntervalMonthly:
		suffix = "/month"
	case PlanIntervalAnnually:
		suffix = "/year"
	}
	return fmt.Sprintf("$%d.%02d%s", p.Price/100, p.Price%100, suffix)
}

func (p *SubscriptionPlan) Clone() *SubscriptionPlan {
	out := *p
	out.Features = p.Features.Clone()
	return &out
}

type CreateSubscriptionPlan struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Price       int        `json:"price" validate:"gte=0"`
	Interval    string     `json:"interval" validate:"required,oneof=monthly annually lifetime"`
	Features    StringList `json:"features" validate:"omitempty,dive,required"`
	IsActive    *bool      `json:"isActive"`
}

type SubscriptionPlanPatch struct {
	Name        *string     `json:"name" validate:"omitempty,min=1"`
	Description *string     `json:"description" validate:"omitempty,min=1"`
	Price       *int        `json:"price" validate:"omitempty,gte=0"`
	Interval    *string     `json:"interval" validate:"omitempty,oneof=monthly annually lifetime"`
	Features    *StringList `json:"features" validate:"omitempty,dive,required"`
	IsActive    *bool       `json:"isActive"`
}

func (p *SubscriptionPlanPatch) Apply(plan *SubscriptionPlan) {
	if p.Name != nil {
		plan.Name = *p.Name
	}
	if p.Description != nil {
		plan.Description = *p.Description
	}
	if p.Price != nil {
		plan.Price = *p.Price
	}
	if p.Interval != nil {
		plan.Interval = *p.Interval
	}
	if p.Features != nil {
		plan.Features = p.Features.Clone()
	}
	if p.IsActive != nil {
		plan.IsActive = *p.IsActive
	}
}

type CheckoutRequest struct {
	PlanID int64 `json:"planId" validate:"required,gt=0"`
}
