package mocks

import (
	"context"

	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) ResolveCart(ctx context.Context, session *models.SessionData) (*models.Cart, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) ActiveCart(ctx context.Context, session *models.SessionData) (*models.Cart, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) UpdateCart(ctx context.Context, session *models.SessionData, req *models.UpdateCartRequest) (*models.Cart, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) SetEmail(ctx context.Context, cart *models.Cart, email string) (*models.Cart, error) {
	args := m.Called(ctx, cart, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) SetShippingAddress(ctx context.Context, cart *models.Cart, address *models.Address) (*models.Cart, error) {
	args := m.Called(ctx, cart, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) SetBillingAddress(ctx context.Context, cart *models.Cart, address *models.Address) (*models.Cart, error) {
	args := m.Called(ctx, cart, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) AddLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error) {
	args := m.Called(ctx, cart, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) UpdateLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error) {
	args := m.Called(ctx, cart, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) RemoveLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error) {
	args := m.Called(ctx, cart, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) SetShippingMethod(ctx context.Context, cart *models.Cart, shippingMethodID string) (*models.Cart, error) {
	args := m.Called(ctx, cart, shippingMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) AddPayment(ctx context.Context, cart *models.Cart, payment models.Payment) (*models.Cart, error) {
	args := m.Called(ctx, cart, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) UpdatePayment(ctx context.Context, cart *models.Cart, payment models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, cart, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *CartService) RedeemDiscountCode(ctx context.Context, cart *models.Cart, code string) (*models.Cart, error) {
	args := m.Called(ctx, cart, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) RemoveDiscountCode(ctx context.Context, cart *models.Cart, discountCodeID string) (*models.Cart, error) {
	args := m.Called(ctx, cart, discountCodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) ShippingMethods(ctx context.Context, onlyMatching bool) ([]models.ShippingMethod, error) {
	args := m.Called(ctx, onlyMatching)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShippingMethod), args.Error(1)
}

func (m *CartService) AvailableShippingMethods(ctx context.Context, cart *models.Cart) ([]models.ShippingMethod, error) {
	args := m.Called(ctx, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShippingMethod), args.Error(1)
}

func (m *CartService) ReplicateCart(ctx context.Context, orderID string) (*models.Cart, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) CheckoutSessionToken(ctx context.Context, cartID string) (*models.Token, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Token), args.Error(1)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Checkout(ctx context.Context, session *models.SessionData, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) QueryOrders(ctx context.Context, query *models.OrderQuery) (*models.OrderPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderPage), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, session *models.SessionData, orderID string) (*models.Order, error) {
	args := m.Called(ctx, session, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type PaymentService struct {
	mock.Mock
}

func (m *PaymentService) HandlePaymentEvent(ctx context.Context, event stripe.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
