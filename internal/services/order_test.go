package service

import (
	"context"
	"net/http"
	"testing"

	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/mocks"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryOrders(t *testing.T) {

	t.Run("rejects a query without an account scope", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		_, err := svc.QueryOrders(context.Background(), &models.OrderQuery{})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
		backend.AssertNotCalled(t, "QueryOrders", mock.Anything, mock.Anything)
	})

	t.Run("strips markup from the free-text query", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.MatchedBy(func(q *models.OrderQuery) bool {
			return q.Query == "laptop"
		})).Return(&models.OrderPage{}, nil)

		_, err := svc.QueryOrders(context.Background(), &models.OrderQuery{
			AccountID: "acc-1",
			Query:     `<script>alert(1)</script>laptop`,
		})

		assert.NoError(t, err)
		backend.AssertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {

	order := models.Order{OrderID: "order-1", CartID: "cart-1"}

	t.Run("requires an order id", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		_, err := svc.GetOrder(context.Background(), &models.SessionData{}, "")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("anonymous shopper reads the order from their own cart", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.Anything).
			Return(&models.OrderPage{Items: []models.Order{order}}, nil)

		got, err := svc.GetOrder(context.Background(), &models.SessionData{CartID: "cart-1"}, "order-1")

		require.NoError(t, err)
		assert.Equal(t, "order-1", got.OrderID)
	})

	t.Run("anonymous shopper with a different cart is rejected", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.Anything).
			Return(&models.OrderPage{Items: []models.Order{order}}, nil)

		_, err := svc.GetOrder(context.Background(), &models.SessionData{CartID: "cart-2"}, "order-1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeCartOrderMismatch, appErr.Code)
	})

	t.Run("anonymous shopper without a cart binding is rejected", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.Anything).
			Return(&models.OrderPage{Items: []models.Order{order}}, nil)

		_, err := svc.GetOrder(context.Background(), &models.SessionData{}, "order-1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeCartOrderMismatch, appErr.Code)
	})

	t.Run("missing order looks identical to a foreign order for anonymous shoppers", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.Anything).Return(&models.OrderPage{}, nil)

		_, missingErr := svc.GetOrder(context.Background(), &models.SessionData{CartID: "cart-1"}, "order-x")

		backendTwo := new(mocks.CommerceClient)
		svcTwo := NewOrderService(backendTwo)
		backendTwo.On("QueryOrders", mock.Anything, mock.Anything).
			Return(&models.OrderPage{Items: []models.Order{order}}, nil)

		_, foreignErr := svcTwo.GetOrder(context.Background(), &models.SessionData{CartID: "cart-9"}, "order-1")

		assert.Equal(t, missingErr.Error(), foreignErr.Error())
	})

	t.Run("authenticated shopper queries within their account scope", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.MatchedBy(func(q *models.OrderQuery) bool {
			return q.AccountID == "acc-1" && len(q.OrderIDs) == 1 && q.OrderIDs[0] == "order-1" && q.Limit == 1
		})).Return(&models.OrderPage{Items: []models.Order{order}}, nil)

		got, err := svc.GetOrder(context.Background(), &models.SessionData{AccountID: "acc-1"}, "order-1")

		require.NoError(t, err)
		assert.Equal(t, "order-1", got.OrderID)
		backend.AssertExpectations(t)
	})

	t.Run("authenticated shopper gets not found for a missing order", func(t *testing.T) {
		backend := new(mocks.CommerceClient)
		svc := NewOrderService(backend)

		backend.On("QueryOrders", mock.Anything, mock.Anything).Return(&models.OrderPage{}, nil)

		_, err := svc.GetOrder(context.Background(), &models.SessionData{AccountID: "acc-1"}, "order-x")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	})
}
