package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/templui/mediavault/internal/config"
	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/model"
)

func TestAdminGuard(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		want Decision
	}{
		{"anonymous", nil, DeniedUnauthenticated},
		{"member", &model.User{ID: 2, Username: "user"}, DeniedNotAdmin},
		{"premium member", &model.User{ID: 3, Username: "vip", IsPremium: true}, DeniedNotAdmin},
		{"admin", &model.User{ID: 1, Username: "admin", IsAdmin: true}, Allowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.user != nil {
				ctx = ctxkeys.WithUser(ctx, tt.user)
			}
			if got := AdminGuard(ctx); got != tt.want {
				t.Errorf("AdminGuard = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	called := false
	next := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}
	h := RequireAdmin(next)

	for _, user := range []*model.User{nil, {ID: 2, Username: "user"}} {
		called = false
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/content/1", nil)
		if user != nil {
			req = req.WithContext(ctxkeys.WithUser(req.Context(), user))
		}
		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
		if called {
			t.Error("handler ran for a denied request")
		}

		var body struct {
			Message string `json:"message"`
		}
		err := json.NewDecoder(rec.Body).Decode(&body)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if body.Message != "Unauthorized: Admin access required" {
			t.Errorf("message = %q", body.Message)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/content/1", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: 1, IsAdmin: true}))
	rec := httptest.NewRecorder()
	h(rec, req)
	if !called || rec.Code != http.StatusNoContent {
		t.Errorf("admin request: called=%v status=%d", called, rec.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/favorites", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: 2}))
	rec = httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("member: status = %d, want 200", rec.Code)
	}
}

func TestRequestLogging(t *testing.T) {
	var seen string
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(requestIDHeader) != seen {
		t.Errorf("request id: context=%q header=%q", seen, rec.Header().Get(requestIDHeader))
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" {
		t.Errorf("incoming request id not kept: %q", seen)
	}
}

func TestRequestLoggingRecovers(t *testing.T) {
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestConfigStripsSecrets(t *testing.T) {
	cfg := &config.Config{
		AppName:         "MediaVault",
		AppEnv:          "development",
		JWTSecret:       "super-secret",
		StripeSecretKey: "sk_test_123",
		S3SecretKey:     "s3-secret",
	}

	var got *config.Config
	h := Config(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Config(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got == nil {
		t.Fatal("config missing from context")
	}
	if !got.IsDevelopment() || got.AppName != "MediaVault" {
		t.Errorf("public fields lost: %+v", got)
	}
	if got.JWTSecret != "" || got.StripeSecretKey != "" || got.S3SecretKey != "" {
		t.Error("secrets leaked into the request config")
	}
}
