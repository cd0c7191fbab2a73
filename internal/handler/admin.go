package handler

import (
	"net/http"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
)

// adminHandler serves the back office. Every route is wrapped in
// middleware.RequireAdmin.
type adminHandler struct {
	contentService *service.ContentService
	statsService   *service.StatsService
	userService    *service.UserService
}

func NewAdminHandler(contentService *service.ContentService, statsService *service.StatsService, userService *service.UserService) *adminHandler {
	return &adminHandler{
		contentService: contentService,
		statsService:   statsService,
		userService:    userService,
	}
}

func (h *adminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Stats(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch admin stats", err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

func (h *adminHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.contentService.All(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch content", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *adminHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var input model.CreateContent
	if !decodeBody(w, r, &input) {
		return
	}

	content, err := h.contentService.Create(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "Failed to create content")
		return
	}
	respond.JSON(w, http.StatusCreated, content)
}

func (h *adminHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "content")
	if !ok {
		return
	}

	var patch model.ContentPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	content, err := h.contentService.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, r, err, "Failed to update content")
		return
	}
	respond.JSON(w, http.StatusOK, content)
}

func (h *adminHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "content")
	if !ok {
		return
	}

	err := h.contentService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to delete content")
		return
	}
	writeSuccess(w)
}

func (h *adminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.All(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch users", err)
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

func (h *adminHandler) SetPremium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	var grant model.PremiumGrant
	if !decodeBody(w, r, &grant) {
		return
	}

	user, err := h.userService.SetPremium(r.Context(), id, &grant)
	if err != nil {
		writeError(w, r, err, "Failed to update premium access")
		return
	}
	respond.JSON(w, http.StatusOK, user)
}
