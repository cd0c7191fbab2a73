package handler

import (
	"errors"
	"net/http"

	"github.com/templui/mediavault/internal/ctxkeys"
	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/service/payment"
)

type checkoutHandler struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *checkoutHandler {
	return &checkoutHandler{checkoutService: checkoutService}
}

type checkoutResponse struct {
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

func (h *checkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input model.CheckoutRequest
	if !decodeBody(w, r, &input) {
		return
	}

	url, err := h.checkoutService.CheckoutURL(r.Context(), user, &input)
	if err != nil {
		if errors.Is(err, payment.ErrCheckoutUnavailable) {
			respond.Error(w, http.StatusNotImplemented, "Payment processing coming soon")
			return
		}
		writeError(w, r, err, "Failed to start checkout")
		return
	}

	respond.JSON(w, http.StatusOK, checkoutResponse{
		URL:      url,
		Provider: h.checkoutService.Provider(),
	})
}
