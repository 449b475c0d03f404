package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	service "github.com/commercekit/storefront-bff/internal/services"
	"github.com/commercekit/storefront-bff/internal/session"
	"github.com/commercekit/storefront-bff/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	sessions     session.Store
}

func NewOrderHandler(orderService service.OrderService, sessions session.Store) *OrderHandler {
	return &OrderHandler{orderService: orderService, sessions: sessions}
}

// QueryOrders lists the authenticated shopper's orders. The account id always
// comes from the verified claims, never from the query string.
func (h *OrderHandler) QueryOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		query := orderQueryFromParams(r.URL.Query())
		query.AccountID = claims.AccountID

		page, err := h.orderService.QueryOrders(r.Context(), query)
		if err != nil {
			response.Error(w, err)
			return
		}

		finish(w, r, h.sessions, state, page)
	}
}

// GetOrder serves the order-confirmation page, where the shopper may well be
// anonymous. The ownership guard inside the service decides whether the order
// may be shown.
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		orderID := r.URL.Query().Get("orderId")

		order, err := h.orderService.GetOrder(r.Context(), &state.Data, orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		finish(w, r, h.sessions, state, order)
	}
}

func orderQueryFromParams(params url.Values) *models.OrderQuery {

	query := &models.OrderQuery{
		OrderIDs:       paramsToIDs(params["orderIds"]),
		OrderNumbers:   paramsToIDs(params["orderNumbers"]),
		OrderStates:    paramsToIDs(params["orderStates"]),
		SortAttributes: paramsToSortAttributes(params["sortAttributes"]),
		Query:          params.Get("query"),
		Cursor:         params.Get("cursor"),
	}

	if limit, err := strconv.Atoi(params.Get("limit")); err == nil && limit > 0 {
		query.Limit = limit
	}

	return query
}

// paramsToIDs accepts both repeated parameters and comma-separated lists.
func paramsToIDs(values []string) []string {

	var ids []string

	for _, value := range values {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	return ids
}

// paramsToSortAttributes parses entries of the form "field" or
// "field:direction". Direction defaults to ascending, and a later duplicate
// field overwrites an earlier one — the result is a plain mapping, not an
// ordered list.
func paramsToSortAttributes(values []string) map[string]models.SortOrder {

	if len(values) == 0 {
		return nil
	}

	sortAttributes := make(map[string]models.SortOrder, len(values))

	for _, value := range values {
		field, direction, found := strings.Cut(value, ":")

		if field = strings.TrimSpace(field); field == "" {
			continue
		}

		order := models.SortAscending
		if found && strings.EqualFold(strings.TrimSpace(direction), string(models.SortDescending)) {
			order = models.SortDescending
		}

		sortAttributes[field] = order
	}

	return sortAttributes
}
