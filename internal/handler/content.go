package handler

import (
	"net/http"

	"github.com/templui/mediavault/internal/middleware"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
)

type contentHandler struct {
	contentService *service.ContentService
	browseService  *service.BrowseService
}

func NewContentHandler(contentService *service.ContentService, browseService *service.BrowseService) *contentHandler {
	return &contentHandler{
		contentService: contentService,
		browseService:  browseService,
	}
}

func (h *contentHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.contentService.Featured(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch featured content", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *contentHandler) Trending(w http.ResponseWriter, r *http.Request) {
	items, err := h.contentService.Trending(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch trending content", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *contentHandler) New(w http.ResponseWriter, r *http.Request) {
	items, err := h.contentService.New(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch new content", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// Show returns one item. Admins also see unpublished items.
func (h *contentHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "content")
	if !ok {
		return
	}

	isAdmin := middleware.AdminGuard(r.Context()) == middleware.Allowed
	content, err := h.contentService.Published(r.Context(), id, isAdmin)
	if err != nil {
		writeError(w, r, err, "Failed to fetch content")
		return
	}
	respond.JSON(w, http.StatusOK, content)
}

func (h *contentHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "content")
	if !ok {
		return
	}

	err := h.contentService.RecordView(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to update view count")
		return
	}
	writeSuccess(w)
}

func (h *contentHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.browseService.Browse(r.Context(), service.ContentQuery{
		Category:    q.Get("category"),
		Type:        q.Get("type"),
		ContentType: q.Get("contentType"),
		SearchTerm:  q.Get("searchTerm"),
		SortBy:      q.Get("sortBy"),
	})
	if err != nil {
		respond.Internal(w, r, "Failed to fetch content", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}
