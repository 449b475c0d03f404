package commerce

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/commercekit/storefront-bff/internal/models"
)

// Client is the narrow contract to the commerce backend, the external system
// of record for carts and orders. Updates are version-checked: a stale version
// makes the backend reject the write, which surfaces here as a conflict.
type Client interface {
	CreateCart(ctx context.Context, draft CartDraft) (*models.Cart, error)
	GetCart(ctx context.Context, cartID string) (*models.Cart, error)
	GetActiveCart(ctx context.Context, accountID string) (*models.Cart, error)
	UpdateCart(ctx context.Context, cartID string, version int64, actions []CartAction) (*models.Cart, error)
	ReplicateCart(ctx context.Context, orderID string) (*models.Cart, error)
	CreateOrder(ctx context.Context, cartID string, version int64, purchaseOrderNumber string) (*models.Order, error)
	QueryOrders(ctx context.Context, query *models.OrderQuery) (*models.OrderPage, error)
	ShippingMethods(ctx context.Context, onlyMatching bool) ([]models.ShippingMethod, error)
	ShippingMethodsForCart(ctx context.Context, cartID string) ([]models.ShippingMethod, error)
	UpdatePayment(ctx context.Context, cartID string, payment *models.Payment) (*models.Payment, error)
	CheckoutSessionToken(ctx context.Context, cartID string) (*models.Token, error)
}

// CartDraft describes the cart to create. AnonymousID ties guest carts to the
// shopper's session; AccountID takes precedence when the shopper is logged in.
type CartDraft struct {
	AccountID   string `json:"accountId,omitempty"`
	AnonymousID string `json:"anonymousId,omitempty"`
	Email       string `json:"email,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// APIError is a non-2xx response from the backend. Body keeps the upstream
// response verbatim so the caller can surface the backend's diagnostics.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce backend returned %d: %s", e.StatusCode, e.Message)
}

// IsConflict reports whether the backend rejected a version-checked update.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// IsNotFound reports whether the referenced resource does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError

	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
