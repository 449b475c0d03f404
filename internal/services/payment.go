package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	"github.com/commercekit/storefront-bff/internal/commerce"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/stripe/stripe-go/v81"
)

// PaymentService applies PSP events to cart payments. The PSP attaches the
// cart and payment ids as intent metadata; this service translates the
// intent's outcome into the backend's payment status.
type PaymentService interface {
	HandlePaymentEvent(ctx context.Context, event stripe.Event) error
}

type paymentService struct {
	backend commerce.Client
}

func NewPaymentService(backend commerce.Client) PaymentService {
	return &paymentService{backend: backend}
}

func (s *paymentService) HandlePaymentEvent(ctx context.Context, event stripe.Event) error {

	logger := middleware.LoggerFromContext(ctx)

	var status models.PaymentStatus

	switch event.Type {
	case "payment_intent.succeeded":
		status = models.PaymentStatusPaid
	case "payment_intent.payment_failed":
		status = models.PaymentStatusFailed
	default:
		logger.Debug("Ignoring payment event", slog.String("type", string(event.Type)))
		return nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return appErrors.ValidationError("Malformed payment event payload").WithError(err)
	}

	cartID := intent.Metadata["cartId"]
	paymentID := intent.Metadata["paymentId"]

	if cartID == "" || paymentID == "" {
		return appErrors.ValidationError("Payment event is missing cart or payment metadata")
	}

	payment := &models.Payment{
		ID:            paymentID,
		PaymentStatus: status,
	}

	if _, err := s.backend.UpdatePayment(ctx, cartID, payment); err != nil {
		return wrapBackendError(err, fmt.Sprintf("Failed to apply payment event to cart %s", cartID))
	}

	logger.Info("Payment status updated from PSP event",
		slog.String("cartId", cartID),
		slog.String("paymentId", paymentID),
		slog.String("status", string(status)))

	return nil
}
