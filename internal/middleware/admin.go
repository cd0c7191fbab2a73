package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/respond"
)

// Decision is the outcome of an admin access check.
type Decision int

const (
	Allowed Decision = iota
	DeniedUnauthenticated
	DeniedNotAdmin
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case DeniedUnauthenticated:
		return "denied_unauthenticated"
	case DeniedNotAdmin:
		return "denied_not_admin"
	default:
		return "unknown"
	}
}

const adminDeniedMessage = "Unauthorized: Admin access required"

// AdminGuard decides whether the session in ctx may use admin operations.
func AdminGuard(ctx context.Context) Decision {
	user := ctxkeys.User(ctx)
	if user == nil {
		return DeniedUnauthenticated
	}
	if !user.IsAdmin {
		return DeniedNotAdmin
	}
	return Allowed
}

// RequireAdmin rejects the request with 403 before next runs unless the
// session belongs to an admin.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decision := AdminGuard(r.Context())
		if decision != Allowed {
			slog.Warn("admin access denied",
				"decision", decision.String(),
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", ctxkeys.RequestID(r.Context()),
			)
			respond.Error(w, http.StatusForbidden, adminDeniedMessage)
			return
		}
		next.ServeHTTP(w, r)
	}
}
