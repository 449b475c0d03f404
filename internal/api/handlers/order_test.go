package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/mocks"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryOrdersHandler(t *testing.T) {

	t.Run("rejects requests without verified claims", func(t *testing.T) {
		orders := new(mocks.OrderService)
		store := new(mocks.SessionStore)
		handler := NewOrderHandler(orders, store)

		r, _ := newSessionRequest(http.MethodGet, "/api/v1/orders", nil, models.SessionData{})
		rec := httptest.NewRecorder()

		handler.QueryOrders()(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		orders.AssertNotCalled(t, "QueryOrders", mock.Anything, mock.Anything)
	})

	t.Run("account id always comes from the claims", func(t *testing.T) {
		orders := new(mocks.OrderService)
		store := new(mocks.SessionStore)
		handler := NewOrderHandler(orders, store)

		orders.On("QueryOrders", mock.Anything, mock.MatchedBy(func(q *models.OrderQuery) bool {
			return q.AccountID == "acc-1" && q.Limit == 10
		})).Return(&models.OrderPage{}, nil)
		store.On("Put", mock.Anything, "sess-1", mock.Anything).Return(nil)

		r, _ := newSessionRequest(http.MethodGet, "/api/v1/orders?limit=10", nil,
			models.SessionData{AccountID: "acc-1"})
		r = r.WithContext(middleware.ContextWithClaims(r.Context(), &models.Claims{AccountID: "acc-1"}))
		rec := httptest.NewRecorder()

		handler.QueryOrders()(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		orders.AssertExpectations(t)
	})
}

func TestGetOrderHandler(t *testing.T) {

	t.Run("ownership mismatch is reported as sent by the service", func(t *testing.T) {
		orders := new(mocks.OrderService)
		store := new(mocks.SessionStore)
		handler := NewOrderHandler(orders, store)

		orders.On("GetOrder", mock.Anything, mock.Anything, "order-1").
			Return(nil, appErrors.OwnershipMismatchError("Order does not match the current cart"))

		r, _ := newSessionRequest(http.MethodGet, "/api/v1/orders/order?orderId=order-1", nil,
			models.SessionData{CartID: "cart-2"})
		rec := httptest.NewRecorder()

		handler.GetOrder()(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, appErrors.ErrCodeCartOrderMismatch, envelope.Error.Code)
	})

	t.Run("matching order is returned", func(t *testing.T) {
		orders := new(mocks.OrderService)
		store := new(mocks.SessionStore)
		handler := NewOrderHandler(orders, store)

		order := &models.Order{OrderID: "order-1", CartID: "cart-1"}
		orders.On("GetOrder", mock.Anything, mock.Anything, "order-1").Return(order, nil)
		store.On("Put", mock.Anything, "sess-1", mock.Anything).Return(nil)

		r, _ := newSessionRequest(http.MethodGet, "/api/v1/orders/order?orderId=order-1", nil,
			models.SessionData{CartID: "cart-1"})
		rec := httptest.NewRecorder()

		handler.GetOrder()(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "order-1", data["orderId"])
	})
}

func TestOrderQueryFromParams(t *testing.T) {

	t.Run("ids accept repeats and comma lists", func(t *testing.T) {
		params := url.Values{}
		params.Add("orderIds", "a,b")
		params.Add("orderIds", "c")
		params.Add("orderNumbers", " n1 , n2 ")

		query := orderQueryFromParams(params)

		assert.Equal(t, []string{"a", "b", "c"}, query.OrderIDs)
		assert.Equal(t, []string{"n1", "n2"}, query.OrderNumbers)
	})

	t.Run("sort direction defaults to ascending", func(t *testing.T) {
		params := url.Values{"sortAttributes": {"createdAt"}}

		query := orderQueryFromParams(params)

		assert.Equal(t, models.SortAscending, query.SortAttributes["createdAt"])
	})

	t.Run("later duplicate sort field wins", func(t *testing.T) {
		params := url.Values{"sortAttributes": {"createdAt:desc", "orderNumber", "createdAt"}}

		query := orderQueryFromParams(params)

		assert.Equal(t, models.SortAscending, query.SortAttributes["createdAt"])
		assert.Equal(t, models.SortAscending, query.SortAttributes["orderNumber"])
		assert.Len(t, query.SortAttributes, 2)
	})

	t.Run("explicit descending is honored", func(t *testing.T) {
		params := url.Values{"sortAttributes": {"createdAt:DESC"}}

		query := orderQueryFromParams(params)

		assert.Equal(t, models.SortDescending, query.SortAttributes["createdAt"])
	})

	t.Run("no sort params leaves the mapping nil", func(t *testing.T) {
		query := orderQueryFromParams(url.Values{})

		assert.Nil(t, query.SortAttributes)
	})

	t.Run("non-positive limit is ignored", func(t *testing.T) {
		query := orderQueryFromParams(url.Values{"limit": {"-5"}})

		assert.Zero(t, query.Limit)
	})
}
