package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/validation"
)

// Videos may be large; the form is parsed with a small memory buffer and
// the rest spills to disk.
const (
	maxUploadSize   = 512 << 20
	uploadMemBuffer = 32 << 20
)

type mediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *mediaHandler {
	return &mediaHandler{mediaService: mediaService}
}

func (h *mediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.mediaService.Enabled() {
		respond.Error(w, http.StatusServiceUnavailable, "Media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	err := r.ParseMultipartForm(uploadMemBuffer)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Validation(w, validation.NewError("file", "is required"))
		return
	}
	defer func() { _ = file.Close() }()

	media, err := h.mediaService.Upload(r.Context(), file, header)
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			respond.Error(w, http.StatusServiceUnavailable, "Media storage is not configured")
			return
		}
		writeError(w, r, err, "Failed to upload media")
		return
	}

	slog.Info("media uploaded", "key", media.Key, "kind", media.Kind, "size", media.Size)
	respond.JSON(w, http.StatusCreated, media)
}
