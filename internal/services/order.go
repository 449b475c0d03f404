package service

import (
	"context"

	"github.com/commercekit/storefront-bff/internal/commerce"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// OrderService reads orders back out of the commerce backend. GetOrder
// enforces the anonymous-access guard: an anonymous shopper may only ever
// read the order tied to their own session's cart, never any other order by
// number or id guessing.
type OrderService interface {
	QueryOrders(ctx context.Context, query *models.OrderQuery) (*models.OrderPage, error)
	GetOrder(ctx context.Context, session *models.SessionData, orderID string) (*models.Order, error)
}

type orderService struct {
	backend   commerce.Client
	sanitizer *bluemonday.Policy
}

func NewOrderService(backend commerce.Client) OrderService {
	return &orderService{
		backend:   backend,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// QueryOrders requires an account-scoped query; the handler guarantees the
// account id is set from verified claims, so the backend query itself is the
// isolation boundary for authenticated shoppers.
func (s *orderService) QueryOrders(ctx context.Context, query *models.OrderQuery) (*models.OrderPage, error) {

	if query.AccountID == "" {
		return nil, appErrors.UnauthorizedError("Authentication required")
	}

	// Free-text search goes to the backend verbatim otherwise; strip any
	// markup before forwarding.
	query.Query = s.sanitizer.Sanitize(query.Query)

	page, err := s.backend.QueryOrders(ctx, query)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to query orders")
	}

	return page, nil
}

func (s *orderService) GetOrder(ctx context.Context, session *models.SessionData, orderID string) (*models.Order, error) {

	if orderID == "" {
		return nil, appErrors.ValidationError("orderId is required")
	}

	page, err := s.backend.QueryOrders(ctx, &models.OrderQuery{
		AccountID: session.AccountID,
		OrderIDs:  []string{orderID},
		Limit:     1,
	})
	if err != nil {
		return nil, wrapBackendError(err, "Failed to fetch order")
	}

	var order *models.Order
	if len(page.Items) > 0 {
		order = &page.Items[0]
	}

	if session.AccountID == "" {
		// Anonymous shoppers may only read the order produced from their own
		// session's cart. The error stays identical whether the order is
		// missing or belongs to someone else.
		if order == nil || session.CartID == "" || order.CartID != session.CartID {
			return nil, appErrors.OwnershipMismatchError("Order does not match the current cart")
		}

		return order, nil
	}

	if order == nil {
		return nil, appErrors.NotFoundError("Order not found")
	}

	return order, nil
}
