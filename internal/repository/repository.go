package repository

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// Store bundles the repositories the application depends on. Both the SQL
// and the in-memory variants hand out one of these.
type Store struct {
	Users      UserRepository
	Content    ContentRepository
	Categories CategoryRepository
	Plans      PlanRepository
	Favorites  FavoriteRepository
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Users:      NewUserRepository(db),
		Content:    NewContentRepository(db),
		Categories: NewCategoryRepository(db),
		Plans:      NewPlanRepository(db),
		Favorites:  NewFavoriteRepository(db),
	}
}

// isUniqueViolation matches unique constraint errors from both SQLite and PostgreSQL.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}
