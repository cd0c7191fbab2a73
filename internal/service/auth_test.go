package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/repository/memory"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/validation"
)

const testSecret = "test-secret"

func newAuthService(store *repository.Store, expiry time.Duration) *service.AuthService {
	email := service.NewEmailService("", "noreply@example.com", "http://localhost", "MediaVault", true)
	return service.NewAuthService(store.Users, email, testSecret, expiry, false)
}

func TestRegisterAndLogin(t *testing.T) {
	store := memory.New()
	auth := newAuthService(store, time.Hour)
	ctx := context.Background()

	user, err := auth.Register(ctx, &model.Credentials{
		Username: "  viewer ",
		Password: "correct-horse-battery",
		Email:    strPtr("viewer@example.com"),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "viewer" || user.IsAdmin || user.IsPremium {
		t.Errorf("registered user = %+v", user)
	}
	if user.PasswordHash == "correct-horse-battery" {
		t.Error("password stored in plain text")
	}

	got, err := auth.Login(ctx, "viewer", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("login returned user %d, want %d", got.ID, user.ID)
	}

	_, err = auth.Login(ctx, "viewer", "wrong-password")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	_, err = auth.Login(ctx, "nobody", "correct-horse-battery")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
}

func TestRegisterRejects(t *testing.T) {
	store := memory.New()
	auth := newAuthService(store, time.Hour)
	ctx := context.Background()

	_, err := auth.Register(ctx, &model.Credentials{Username: "taken", Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = auth.Register(ctx, &model.Credentials{Username: "taken", Password: "another-long-secret"})
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Errorf("duplicate username: got %v", err)
	}

	tests := []struct {
		name  string
		input model.Credentials
		field string
	}{
		{"short username", model.Credentials{Username: "ab", Password: "correct-horse-battery"}, "username"},
		{"short password", model.Credentials{Username: "someone", Password: "short"}, "password"},
		{"common password", model.Credentials{Username: "someone", Password: "mypassword123"}, "password"},
		{"bad email", model.Credentials{Username: "someone", Password: "correct-horse-battery", Email: strPtr("nope")}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := auth.Register(ctx, &input)
			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Fields[0].Field != tt.field {
				t.Errorf("field = %s, want %s", verr.Fields[0].Field, tt.field)
			}
		})
	}
}

func TestSessionTokens(t *testing.T) {
	store := seededStore(t)
	auth := newAuthService(store, time.Hour)
	ctx := context.Background()

	admin, err := store.Users.ByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}

	token, expiry, err := auth.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if !expiry.After(time.Now()) {
		t.Error("expiry is not in the future")
	}

	user, err := auth.SessionUser(ctx, token)
	if err != nil {
		t.Fatalf("SessionUser failed: %v", err)
	}
	if user.ID != admin.ID || !user.IsAdmin {
		t.Errorf("session user = %+v", user)
	}

	_, err = auth.VerifyJWT(token + "x")
	if !errors.Is(err, service.ErrInvalidSession) {
		t.Errorf("tampered token: got %v", err)
	}

	other := service.NewAuthService(store.Users, nil, "other-secret", time.Hour, false)
	_, err = other.VerifyJWT(token)
	if !errors.Is(err, service.ErrInvalidSession) {
		t.Errorf("foreign secret: got %v", err)
	}

	expired := newAuthService(store, -time.Minute)
	old, _, err := expired.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	_, err = auth.VerifyJWT(old)
	if !errors.Is(err, service.ErrInvalidSession) {
		t.Errorf("expired token: got %v", err)
	}
}

func TestSessionCookie(t *testing.T) {
	auth := newAuthService(memory.New(), time.Hour)

	rec := httptest.NewRecorder()
	auth.SetJWTCookie(rec, "abc", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	token, ok := auth.SessionToken(req)
	if !ok || token != "abc" {
		t.Errorf("SessionToken = %q, %v", token, ok)
	}

	_, ok = auth.SessionToken(httptest.NewRequest(http.MethodGet, "/", nil))
	if ok {
		t.Error("request without cookie reported a session")
	}
}

func TestRegisterTakenUsernameBeforePasswordPolicy(t *testing.T) {
	store := memory.New()
	auth := newAuthService(store, time.Hour)
	ctx := context.Background()

	_, err := auth.Register(ctx, &model.Credentials{Username: "viewer", Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// "short" also breaks the password policy; the taken name wins.
	_, err = auth.Register(ctx, &model.Credentials{Username: " viewer", Password: "short"})
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Errorf("got %v, want ErrDuplicateUsername", err)
	}

	_, err = auth.Register(ctx, &model.Credentials{Username: "someone-else", Password: "short"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Errorf("got %v, want a validation error", err)
	}
}
