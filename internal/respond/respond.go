// Package respond writes JSON responses in the shape every API endpoint shares.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/validation"
)

// Message is the body of every error response.
type Message struct {
	Message string                   `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
	Detail  string                   `json:"detail,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err, "status", status)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Message{Message: message})
}

// Validation writes a 400 listing each rejected field.
func Validation(w http.ResponseWriter, err *validation.Error) {
	JSON(w, http.StatusBadRequest, Message{
		Message: "Invalid request data",
		Errors:  err.Fields,
	})
}

// Internal logs err and writes a generic 500 carrying message. The error
// text is only exposed as detail when the request config is development.
func Internal(w http.ResponseWriter, r *http.Request, message string, err error) {
	slog.Error(message, "error", err, "method", r.Method, "path", r.URL.Path, "request_id", ctxkeys.RequestID(r.Context()))

	body := Message{Message: message}
	if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.IsDevelopment() {
		body.Detail = err.Error()
	}
	JSON(w, http.StatusInternalServerError, body)
}

// AsValidation reports whether err carries field errors and writes them if so.
func AsValidation(w http.ResponseWriter, err error) bool {
	var verr *validation.Error
	if errors.As(err, &verr) {
		Validation(w, verr)
		return true
	}
	return false
}
