package model

import (
	"time"
)

type User struct {
	ID                 int64      `db:"id" json:"id"`
	Username           string     `db:"username" json:"username"`
	PasswordHash       string     `db:"password" json:"-"`
	Email              *string    `db:"email" json:"email"`
	IsAdmin            bool       `db:"is_admin" json:"isAdmin"`
	IsPremium          bool       `db:"is_premium" json:"isPremium"`
	SubscriptionType   *string    `db:"subscription_type" json:"subscriptionType"`
	SubscriptionExpiry *time.Time `db:"subscription_expiry" json:"subscriptionExpiry"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
}

// HasPremiumAccess reports whether the user may view premium content at t.
// Admins always may; an expired subscription revokes access even if the flag is still set.
func (u *User) HasPremiumAccess(t time.Time) bool {
	if u.IsAdmin {
		return true
	}
	if !u.IsPremium {
		return false
	}
	return u.SubscriptionExpiry == nil || u.SubscriptionExpiry.After(t)
}

func (u *User) Clone() *User {
	out := *u
	return &out
}

// CreateUser is the validated input shape for registration and seeding.
// Password holds the bcrypt hash by the time it reaches a repository.
type CreateUser struct {
	Username           string     `json:"username" validate:"required,min=3,max=50"`
	Password           string     `json:"password" validate:"required"`
	Email              *string    `json:"email" validate:"omitempty,email"`
	IsAdmin            bool       `json:"isAdmin"`
	IsPremium          bool       `json:"isPremium"`
	SubscriptionType   *string    `json:"subscriptionType" validate:"omitempty,oneof=monthly annually lifetime"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
}

type UserPatch struct {
	Email              *string    `json:"email" validate:"omitempty,email"`
	PasswordHash       *string    `json:"-"`
	IsPremium          *bool      `json:"isPremium"`
	SubscriptionType   *string    `json:"subscriptionType" validate:"omitempty,oneof=monthly annually lifetime"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
	// ClearExpiry removes the expiry, as for lifetime grants.
	ClearExpiry bool `json:"-"`
}

func (p *UserPatch) Apply(u *User) {
	if p.Email != nil {
		e := *p.Email
		u.Email = &e
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.IsPremium != nil {
		u.IsPremium = *p.IsPremium
	}
	if p.SubscriptionType != nil {
		s := *p.SubscriptionType
		u.SubscriptionType = &s
	}
	if p.SubscriptionExpiry != nil {
		t := *p.SubscriptionExpiry
		u.SubscriptionExpiry = &t
	}
	if p.ClearExpiry {
		u.SubscriptionExpiry = nil
	}
}

// Credentials is the registration and login body. Password is plaintext here.
type Credentials struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// PremiumGrant is the admin body for granting or revoking premium access.
// SubscriptionType is required when granting.
type PremiumGrant struct {
	IsPremium          *bool      `json:"isPremium" validate:"required"`
	SubscriptionType   *string    `json:"subscriptionType" validate:"omitempty,oneof=monthly annually lifetime"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
}
