package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input model.Credentials
	if !decodeBody(w, r, &input) {
		return
	}

	user, err := h.authService.Register(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "Failed to register")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	slog.Info("user registered", "user_id", user.ID)
	respond.JSON(w, http.StatusCreated, user)
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if !decodeBody(w, r, &input) {
		return
	}

	user, err := h.authService.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respond.Internal(w, r, "Failed to log in", err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	writeSuccess(w)
}

func (h *authHandler) User(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, ctxkeys.User(r.Context()))
}

func (h *authHandler) startSession(w http.ResponseWriter, r *http.Request, user *model.User) bool {
	token, expiry, err := h.authService.GenerateJWT(user)
	if err != nil {
		respond.Internal(w, r, "Failed to create session", err)
		return false
	}
	h.authService.SetJWTCookie(w, token, expiry)
	return true
}
