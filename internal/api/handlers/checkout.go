package handlers

import (
	"log/slog"
	"net/http"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	"github.com/commercekit/storefront-bff/internal/metrics"
	"github.com/commercekit/storefront-bff/internal/models"
	service "github.com/commercekit/storefront-bff/internal/services"
	"github.com/commercekit/storefront-bff/internal/session"
	"github.com/commercekit/storefront-bff/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	sessions        session.Store
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService, sessions session.Store) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		sessions:        sessions,
		validator:       validator.New(),
	}
}

// Checkout finalizes the session's cart into an order. Pending email/address
// updates in the same body are applied first; on success the cart binding is
// gone from the projected session.
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !parseOptionalBody(w, r, &req, h.validator) {
			return
		}

		order, err := h.checkoutService.Checkout(r.Context(), &state.Data, &req)
		if err != nil {
			metrics.ObserveCheckout("failed")
			response.Error(w, err)
			return
		}

		metrics.ObserveCheckout("placed")

		middleware.LoggerFromContext(r.Context()).Info("Order placed",
			slog.String("orderId", order.OrderID),
			slog.String("cartId", order.CartID))

		finish(w, r, h.sessions, state, order)
	}
}
