package mocks

import (
	"context"

	"github.com/commercekit/storefront-bff/internal/commerce"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/stretchr/testify/mock"
)

type CommerceClient struct {
	mock.Mock
}

func (m *CommerceClient) CreateCart(ctx context.Context, draft commerce.CartDraft) (*models.Cart, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CommerceClient) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CommerceClient) GetActiveCart(ctx context.Context, accountID string) (*models.Cart, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CommerceClient) UpdateCart(ctx context.Context, cartID string, version int64, actions []commerce.CartAction) (*models.Cart, error) {
	args := m.Called(ctx, cartID, version, actions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CommerceClient) ReplicateCart(ctx context.Context, orderID string) (*models.Cart, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CommerceClient) CreateOrder(ctx context.Context, cartID string, version int64, purchaseOrderNumber string) (*models.Order, error) {
	args := m.Called(ctx, cartID, version, purchaseOrderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *CommerceClient) QueryOrders(ctx context.Context, query *models.OrderQuery) (*models.OrderPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderPage), args.Error(1)
}

func (m *CommerceClient) ShippingMethods(ctx context.Context, onlyMatching bool) ([]models.ShippingMethod, error) {
	args := m.Called(ctx, onlyMatching)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShippingMethod), args.Error(1)
}

func (m *CommerceClient) ShippingMethodsForCart(ctx context.Context, cartID string) ([]models.ShippingMethod, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShippingMethod), args.Error(1)
}

func (m *CommerceClient) UpdatePayment(ctx context.Context, cartID string, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, cartID, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *CommerceClient) CheckoutSessionToken(ctx context.Context, cartID string) (*models.Token, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Token), args.Error(1)
}
