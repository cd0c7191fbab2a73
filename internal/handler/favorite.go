package handler

import (
	"net/http"

	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
)

// favoriteHandler routes sit behind middleware.RequireAuth, so the session
// user is always present.
type favoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *favoriteHandler {
	return &favoriteHandler{favoriteService: favoriteService}
}

type addFavoriteRequest struct {
	ContentID int64 `json:"contentId"`
}

func (h *favoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	items, err := h.favoriteService.ByUser(r.Context(), user.ID)
	if err != nil {
		respond.Internal(w, r, "Failed to fetch favorites", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *favoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input addFavoriteRequest
	if !decodeBody(w, r, &input) {
		return
	}

	favorite, err := h.favoriteService.Add(r.Context(), &model.CreateFavorite{
		UserID:    user.ID,
		ContentID: input.ContentID,
	})
	if err != nil {
		writeError(w, r, err, "Failed to add favorite")
		return
	}
	respond.JSON(w, http.StatusCreated, favorite)
}

func (h *favoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	contentID, ok := pathID(w, r, "contentId", "content")
	if !ok {
		return
	}

	err := h.favoriteService.Remove(r.Context(), user.ID, contentID)
	if err != nil {
		writeError(w, r, err, "Failed to remove favorite")
		return
	}
	writeSuccess(w)
}
