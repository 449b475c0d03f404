package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	service "github.com/commercekit/storefront-bff/internal/services"
	"github.com/commercekit/storefront-bff/internal/utils/response"
	stripeClient "github.com/commercekit/storefront-bff/pkg/stripe"
)

const maxWebhookBody = 65536

type PaymentWebhookHandler struct {
	paymentService service.PaymentService
	stripe         stripeClient.Client
}

func NewPaymentWebhookHandler(paymentService service.PaymentService, stripe stripeClient.Client) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{paymentService: paymentService, stripe: stripe}
}

// HandleWebhook receives PSP payment events. The signature is verified before
// anything touches the backend; unverifiable requests are rejected outright.
func (h *PaymentWebhookHandler) HandleWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Failed to read webhook payload"))
			return
		}

		event, err := h.stripe.VerifyWebhookSignature(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			logger.Warn("Webhook signature verification failed", slog.String("error", err.Error()))
			response.Error(w, appErrors.BadRequestError("Invalid webhook signature"))
			return
		}

		if err := h.paymentService.HandlePaymentEvent(r.Context(), event); err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, map[string]bool{"received": true})
	}
}
