package handler

import (
	"errors"
	"net/http"

	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
)

type pageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *pageHandler {
	return &pageHandler{pageService: pageService}
}

func (h *pageHandler) Show(w http.ResponseWriter, r *http.Request) {
	page, err := h.pageService.Page(r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respond.Error(w, http.StatusNotFound, "Page not found")
			return
		}
		respond.Internal(w, r, "Failed to load page", err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}
