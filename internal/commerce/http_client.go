package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/commercekit/storefront-bff/internal/config"
	"github.com/commercekit/storefront-bff/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// httpClient talks to the commerce backend's REST API. All requests are
// project-scoped and authenticated with the platform API key; the transport is
// traced so every outbound call shows up as a client span.
type httpClient struct {
	baseURL    string
	projectKey string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(cfg *config.CommerceBackend) Client {
	return &httpClient{
		baseURL:    cfg.BaseURL,
		projectKey: cfg.ProjectKey,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *httpClient) CreateCart(ctx context.Context, draft CartDraft) (*models.Cart, error) {
	cart := &models.Cart{}
	if err := c.do(ctx, http.MethodPost, "/carts", nil, draft, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *httpClient) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	cart := &models.Cart{}
	if err := c.do(ctx, http.MethodGet, "/carts/"+url.PathEscape(cartID), nil, nil, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *httpClient) GetActiveCart(ctx context.Context, accountID string) (*models.Cart, error) {
	cart := &models.Cart{}
	query := url.Values{"accountId": {accountID}}
	if err := c.do(ctx, http.MethodGet, "/carts/active", query, nil, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *httpClient) UpdateCart(ctx context.Context, cartID string, version int64, actions []CartAction) (*models.Cart, error) {
	body := map[string]any{
		"version": version,
		"actions": actions,
	}

	cart := &models.Cart{}
	if err := c.do(ctx, http.MethodPost, "/carts/"+url.PathEscape(cartID), nil, body, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *httpClient) ReplicateCart(ctx context.Context, orderID string) (*models.Cart, error) {
	body := map[string]any{
		"reference": map[string]string{"typeId": "order", "id": orderID},
	}

	cart := &models.Cart{}
	if err := c.do(ctx, http.MethodPost, "/carts/replicate", nil, body, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *httpClient) CreateOrder(ctx context.Context, cartID string, version int64, purchaseOrderNumber string) (*models.Order, error) {
	body := map[string]any{
		"cartId":  cartID,
		"version": version,
	}

	if purchaseOrderNumber != "" {
		body["purchaseOrderNumber"] = purchaseOrderNumber
	}

	order := &models.Order{}
	if err := c.do(ctx, http.MethodPost, "/orders", nil, body, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *httpClient) QueryOrders(ctx context.Context, orderQuery *models.OrderQuery) (*models.OrderPage, error) {
	query := url.Values{}

	if orderQuery.AccountID != "" {
		query.Set("accountId", orderQuery.AccountID)
	}

	for _, id := range orderQuery.OrderIDs {
		query.Add("orderIds", id)
	}

	for _, number := range orderQuery.OrderNumbers {
		query.Add("orderNumbers", number)
	}

	for _, state := range orderQuery.OrderStates {
		query.Add("orderStates", state)
	}

	if orderQuery.Query != "" {
		query.Set("query", orderQuery.Query)
	}

	for field, direction := range orderQuery.SortAttributes {
		query.Add("sort", field+" "+string(direction))
	}

	if orderQuery.Limit > 0 {
		query.Set("limit", strconv.Itoa(orderQuery.Limit))
	}

	if orderQuery.Cursor != "" {
		query.Set("cursor", orderQuery.Cursor)
	}

	page := &models.OrderPage{}
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (c *httpClient) ShippingMethods(ctx context.Context, onlyMatching bool) ([]models.ShippingMethod, error) {
	query := url.Values{"onlyMatching": {strconv.FormatBool(onlyMatching)}}

	var methods []models.ShippingMethod
	if err := c.do(ctx, http.MethodGet, "/shipping-methods", query, nil, &methods); err != nil {
		return nil, err
	}

	return methods, nil
}

func (c *httpClient) ShippingMethodsForCart(ctx context.Context, cartID string) ([]models.ShippingMethod, error) {
	query := url.Values{"cartId": {cartID}}

	var methods []models.ShippingMethod
	if err := c.do(ctx, http.MethodGet, "/shipping-methods/matching-cart", query, nil, &methods); err != nil {
		return nil, err
	}

	return methods, nil
}

func (c *httpClient) UpdatePayment(ctx context.Context, cartID string, payment *models.Payment) (*models.Payment, error) {
	updated := &models.Payment{}
	path := "/carts/" + url.PathEscape(cartID) + "/payments"
	if err := c.do(ctx, http.MethodPost, path, nil, payment, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *httpClient) CheckoutSessionToken(ctx context.Context, cartID string) (*models.Token, error) {
	body := map[string]any{"cartId": cartID}

	token := &models.Token{}
	if err := c.do(ctx, http.MethodPost, "/checkout/sessions", nil, body, token); err != nil {
		return nil, err
	}

	return token, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {

	endpoint := c.baseURL + "/" + c.projectKey + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce backend request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    backendMessage(respBody, resp.StatusCode),
			Body:       string(respBody),
		}
	}

	if dest == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, dest); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

// backendMessage pulls the human-readable message out of an error response,
// falling back to the HTTP status text.
func backendMessage(body []byte, statusCode int) string {
	var envelope struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	return http.StatusText(statusCode)
}
