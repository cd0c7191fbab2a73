package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/validation"
)

const maxBodySize = 1 << 20

var notFoundMessages = []struct {
	err     error
	message string
}{
	{repository.ErrContentNotFound, "Content not found"},
	{repository.ErrCategoryNotFound, "Category not found"},
	{repository.ErrPlanNotFound, "Subscription plan not found"},
	{repository.ErrUserNotFound, "User not found"},
	{repository.ErrFavoriteNotFound, "Favorite not found"},
}

// decodeBody reads a JSON body into dst. On failure it writes the 400 and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Request body too large")
		return false
	}

	err = validation.DecodeJSON(body, dst)
	if err != nil {
		if !respond.AsValidation(w, err) {
			respond.Error(w, http.StatusBadRequest, "Invalid request data")
		}
		return false
	}
	return true
}

// pathID parses a numeric path value. On failure it writes
// 400 "Invalid <label> ID" and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// writeError maps service and repository errors onto status codes. Anything
// unrecognised is logged and answered with 500 and fallback.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if respond.AsValidation(w, err) {
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			respond.Error(w, http.StatusNotFound, nf.message)
			return
		}
	}

	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		respond.Error(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, repository.ErrDuplicateCategory):
		respond.Error(w, http.StatusConflict, "Category name or slug already exists")
	default:
		respond.Internal(w, r, fallback, err)
	}
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeSuccess(w http.ResponseWriter) {
	respond.JSON(w, http.StatusOK, successResponse{Success: true})
}
