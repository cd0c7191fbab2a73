package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/templui/mediavault/internal/config"
	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/validation"
)

func TestInternal(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name       string
		cfg        *config.Config
		wantDetail string
	}{
		{"no config", nil, ""},
		{"production", &config.Config{AppEnv: "production"}, ""},
		{"development", &config.Config{AppEnv: "development"}, "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.cfg != nil {
				req = req.WithContext(ctxkeys.WithConfig(req.Context(), tt.cfg))
			}
			rec := httptest.NewRecorder()

			respond.Internal(rec, req, "Failed to fetch admin stats", cause)

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", rec.Code)
			}
			var body respond.Message
			err := json.NewDecoder(rec.Body).Decode(&body)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if body.Message != "Failed to fetch admin stats" {
				t.Errorf("message = %q", body.Message)
			}
			if body.Detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", body.Detail, tt.wantDetail)
			}
		})
	}
}

func TestAsValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	if respond.AsValidation(rec, errors.New("plain")) {
		t.Error("plain error treated as validation error")
	}

	wrapped := errors.Join(errors.New("context"), validation.NewError("title", "is required"))
	if !respond.AsValidation(rec, wrapped) {
		t.Fatal("wrapped validation error not recognised")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var body respond.Message
	err := json.NewDecoder(rec.Body).Decode(&body)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "title" {
		t.Errorf("errors = %+v", body.Errors)
	}
}
