package service

import (
	"context"
	"log/slog"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	"github.com/commercekit/storefront-bff/internal/commerce"
	"github.com/commercekit/storefront-bff/internal/models"
)

// CheckoutService turns the session's cart into an order. The transition is
// one-way: on success the session's cart binding is cleared, so the shopper's
// next action will not reference the consumed cart.
type CheckoutService interface {
	Checkout(ctx context.Context, session *models.SessionData, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutService struct {
	carts    CartService
	backend  commerce.Client
	notifier NotificationService
}

func NewCheckoutService(carts CartService, backend commerce.Client, notifier NotificationService) CheckoutService {
	return &checkoutService{carts: carts, backend: backend, notifier: notifier}
}

// Checkout is accept-and-finalize in one round trip: email/address updates
// carried in the same request body are applied to the cart before the
// transition.
func (s *checkoutService) Checkout(ctx context.Context, session *models.SessionData, req *models.CheckoutRequest) (*models.Order, error) {

	var updates *models.UpdateCartRequest
	var purchaseOrderNumber string

	if req != nil {
		updates = &req.UpdateCartRequest
		purchaseOrderNumber = req.PurchaseOrderNumber
	}

	cart, err := s.carts.UpdateCart(ctx, session, updates)
	if err != nil {
		return nil, err
	}

	order, err := s.backend.CreateOrder(ctx, cart.CartID, cart.Version, purchaseOrderNumber)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to place order")
	}

	// The backend does not always echo the email back onto the order.
	if order.Email == "" {
		order.Email = cart.Email
	}

	if err := s.notifier.SendOrderConfirmation(ctx, order); err != nil {
		// The order exists at this point; there is no rollback. The failure
		// still surfaces to the caller after the fact.
		middleware.LoggerFromContext(ctx).Error("Order placed but confirmation email failed",
			slog.String("orderId", order.OrderID),
			slog.String("error", err.Error()))
		return nil, err
	}

	session.CartID = ""

	return order, nil
}
