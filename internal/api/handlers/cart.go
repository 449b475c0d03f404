package handlers

import (
	"log/slog"
	"net/http"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	service "github.com/commercekit/storefront-bff/internal/services"
	"github.com/commercekit/storefront-bff/internal/session"
	"github.com/commercekit/storefront-bff/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	sessions    session.Store
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService, sessions session.Store) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		sessions:    sessions,
		validator:   validator.New(),
	}
}

// GetCart peeks at the session's cart without ever creating one. A session
// with no active cart gets an empty object, not an error.
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ActiveCart(r.Context(), &state.Data)
		if err != nil {
			// Resolver failures are reported as a plain 400 carrying the
			// upstream message; there is nothing the client can recover from.
			middleware.LoggerFromContext(r.Context()).Warn("Cart resolution failed", slog.String("error", err.Error()))
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if cart == nil {
			finish(w, r, h.sessions, state, struct{}{})
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

// ResetCart drops the session's cart binding. The cart itself stays untouched
// on the backend.
func (h *CartHandler) ResetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		state.Data = state.Data.WithoutCart()
		finish(w, r, h.sessions, state, struct{}{})
	}
}

// UpdateCart applies email and address intents carried in one request. A
// request supplying only one of shipping/billing sets both to it.
func (h *CartHandler) UpdateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.UpdateCartRequest
		if !parseOptionalBody(w, r, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateCart(r.Context(), &state.Data, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

func (h *CartHandler) AddLineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.AddLineItemRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		item := models.LineItem{
			Variant: &models.Variant{SKU: req.Variant.SKU},
			Count:   models.NormalizeCount(req.Variant.Count),
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.AddLineItem(r.Context(), cart, item)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

func (h *CartHandler) UpdateLineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.UpdateLineItemRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		item := models.LineItem{
			LineItemID: req.LineItem.ID,
			Count:      models.NormalizeCount(req.LineItem.Count),
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.UpdateLineItem(r.Context(), cart, item)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

func (h *CartHandler) RemoveLineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.RemoveLineItemRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		item := models.LineItem{LineItemID: req.LineItem.ID}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.RemoveLineItem(r.Context(), cart, item)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

// ReplicateCart builds a fresh cart from a previous order and binds the
// session to it.
func (h *CartHandler) ReplicateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		orderID := r.URL.Query().Get("orderId")
		if orderID == "" {
			response.Error(w, appErrors.ValidationError("orderId is required"))
			return
		}

		cart, err := h.cartService.ReplicateCart(r.Context(), orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

func (h *CartHandler) GetShippingMethods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		onlyMatching := r.URL.Query().Get("onlyMatching") == "true"

		methods, err := h.cartService.ShippingMethods(r.Context(), onlyMatching)
		if err != nil {
			response.Error(w, err)
			return
		}

		finish(w, r, h.sessions, state, methods)
	}
}

func (h *CartHandler) GetAvailableShippingMethods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		methods, err := h.cartService.AvailableShippingMethods(r.Context(), cart)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, methods)
	}
}

func (h *CartHandler) SetShippingMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.SetShippingMethodRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.SetShippingMethod(r.Context(), cart, req.ShippingMethod.ID)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

// AddPayment attaches an invoice payment to the cart; the amount defaults to
// the cart's current sum when the caller leaves it out.
func (h *CartHandler) AddPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.AddPaymentRequest
		if !parseOptionalBody(w, r, &req, h.validator) {
			return
		}

		payment := models.Payment{}
		if req.Payment != nil {
			payment.ID = req.Payment.ID
			payment.AmountPlanned = req.Payment.AmountPlanned
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.AddPayment(r.Context(), cart, payment)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

// UpdatePayment responds with the payment object, not the cart: the state
// transition of interest happens on the payment itself.
func (h *CartHandler) UpdatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.UpdatePaymentRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		payment := models.Payment{
			ID:            req.Payment.ID,
			AmountPlanned: req.Payment.AmountPlanned,
			PaymentStatus: req.Payment.PaymentStatus,
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		updated, err := h.cartService.UpdatePayment(r.Context(), cart, payment)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, updated)
	}
}

func (h *CartHandler) RedeemDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.RedeemDiscountRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.RedeemDiscountCode(r.Context(), cart, req.Code)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

func (h *CartHandler) RemoveDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		var req models.RemoveDiscountRequest
		if !parseBody(w, r, &req, h.validator) {
			return
		}

		cart, err := h.cartService.ResolveCart(r.Context(), &state.Data)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.RemoveDiscountCode(r.Context(), cart, req.DiscountCodeID)
		if err != nil {
			response.Error(w, err)
			return
		}

		state.Data = state.Data.WithCart(cart.CartID)
		finish(w, r, h.sessions, state, cart)
	}
}

// GetCheckoutSessionToken returns the backend's checkout token for the bound
// cart, or an empty result when the session has none. The cart id comes from
// the session so carts that are no longer active can still be used.
func (h *CartHandler) GetCheckoutSessionToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state, ok := sessionState(w, r)
		if !ok {
			return
		}

		if state.Data.CartID == "" {
			finish(w, r, h.sessions, state, nil)
			return
		}

		token, err := h.cartService.CheckoutSessionToken(r.Context(), state.Data.CartID)
		if err != nil {
			response.Error(w, err)
			return
		}

		finish(w, r, h.sessions, state, token)
	}
}
