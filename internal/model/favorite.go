package model

import "time"

type Favorite struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	ContentID int64     `db:"content_id" json:"contentId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateFavorite struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ContentID int64 `json:"contentId" validate:"required,gt=0"`
}
