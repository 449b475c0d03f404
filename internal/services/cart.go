package service

import (
	"context"

	"github.com/commercekit/storefront-bff/internal/commerce"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/google/uuid"
)

// CartService resolves the session-bound cart and applies the cart mutations.
// Every mutation takes the caller's cart value and returns the backend's
// latest version; an operation is never applied against a stale snapshot
// silently — a version conflict surfaces as an error instead.
type CartService interface {
	ResolveCart(ctx context.Context, session *models.SessionData) (*models.Cart, error)
	ActiveCart(ctx context.Context, session *models.SessionData) (*models.Cart, error)
	UpdateCart(ctx context.Context, session *models.SessionData, req *models.UpdateCartRequest) (*models.Cart, error)
	SetEmail(ctx context.Context, cart *models.Cart, email string) (*models.Cart, error)
	SetShippingAddress(ctx context.Context, cart *models.Cart, address *models.Address) (*models.Cart, error)
	SetBillingAddress(ctx context.Context, cart *models.Cart, address *models.Address) (*models.Cart, error)
	AddLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error)
	UpdateLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error)
	RemoveLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error)
	SetShippingMethod(ctx context.Context, cart *models.Cart, shippingMethodID string) (*models.Cart, error)
	AddPayment(ctx context.Context, cart *models.Cart, payment models.Payment) (*models.Cart, error)
	UpdatePayment(ctx context.Context, cart *models.Cart, payment models.Payment) (*models.Payment, error)
	RedeemDiscountCode(ctx context.Context, cart *models.Cart, code string) (*models.Cart, error)
	RemoveDiscountCode(ctx context.Context, cart *models.Cart, discountCodeID string) (*models.Cart, error)
	ShippingMethods(ctx context.Context, onlyMatching bool) ([]models.ShippingMethod, error)
	AvailableShippingMethods(ctx context.Context, cart *models.Cart) ([]models.ShippingMethod, error)
	ReplicateCart(ctx context.Context, orderID string) (*models.Cart, error)
	CheckoutSessionToken(ctx context.Context, cartID string) (*models.Token, error)
}

type cartService struct {
	backend  commerce.Client
	currency string
}

func NewCartService(backend commerce.Client, currency string) CartService {
	return &cartService{backend: backend, currency: currency}
}

// ActiveCart returns the cart the session already references, or nil when
// there is none. It never creates a cart: the cart-read action must not
// fabricate one just by being called.
func (s *cartService) ActiveCart(ctx context.Context, session *models.SessionData) (*models.Cart, error) {

	if session.AccountID != "" {
		cart, err := s.backend.GetActiveCart(ctx, session.AccountID)
		if err != nil {
			if isNotFound(err) {
				return nil, nil
			}

			return nil, wrapBackendError(err, "Failed to fetch active cart")
		}

		return cart, nil
	}

	if session.CartID == "" {
		return nil, nil
	}

	cart, err := s.backend.GetCart(ctx, session.CartID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, wrapBackendError(err, "Failed to fetch cart")
	}

	return cart, nil
}

// ResolveCart resolves-or-creates: a cart is guaranteed to exist afterwards.
// Anonymous shoppers get an anonymous id minted into their session on first
// cart creation so the backend can correlate guest carts.
func (s *cartService) ResolveCart(ctx context.Context, session *models.SessionData) (*models.Cart, error) {

	cart, err := s.ActiveCart(ctx, session)
	if err != nil {
		return nil, err
	}

	if cart != nil {
		return cart, nil
	}

	if session.AccountID == "" && session.AnonymousID == "" {
		session.AnonymousID = uuid.NewString()
	}

	cart, err = s.backend.CreateCart(ctx, commerce.CartDraft{
		AccountID:   session.AccountID,
		AnonymousID: session.AnonymousID,
		Currency:    s.currency,
	})
	if err != nil {
		return nil, wrapBackendError(err, "Failed to create cart")
	}

	return cart, nil
}

// UpdateCart applies the email/address intents of a single request in
// sequence, each step feeding the next cart value. A request that supplies
// only one of shipping/billing intends that address for both purposes.
func (s *cartService) UpdateCart(ctx context.Context, session *models.SessionData, req *models.UpdateCartRequest) (*models.Cart, error) {

	cart, err := s.ResolveCart(ctx, session)
	if err != nil {
		return nil, err
	}

	if req == nil {
		return cart, nil
	}

	if req.Account != nil && req.Account.Email != "" {
		cart, err = s.SetEmail(ctx, cart, req.Account.Email)
		if err != nil {
			return nil, err
		}
	}

	if req.Shipping != nil || req.Billing != nil {
		shipping := req.Shipping
		billing := req.Billing

		if shipping == nil {
			shipping = billing
		}
		if billing == nil {
			billing = shipping
		}

		cart, err = s.SetShippingAddress(ctx, cart, shipping)
		if err != nil {
			return nil, err
		}

		cart, err = s.SetBillingAddress(ctx, cart, billing)
		if err != nil {
			return nil, err
		}
	}

	return cart, nil
}

func (s *cartService) SetEmail(ctx context.Context, cart *models.Cart, email string) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.SetCustomerEmail(email))
}

func (s *cartService) SetShippingAddress(ctx context.Context, cart *models.Cart, address *models.Address) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.SetShippingAddress(address))
}

func (s *cartService) SetBillingAddress(ctx context.Context, cart *models.Cart, address *models.Address) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.SetBillingAddress(address))
}

func (s *cartService) AddLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.AddLineItem(item.Variant.SKU, item.Count))
}

func (s *cartService) UpdateLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.ChangeLineItemQuantity(item.LineItemID, item.Count))
}

func (s *cartService) RemoveLineItem(ctx context.Context, cart *models.Cart, item models.LineItem) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.RemoveLineItem(item.LineItemID))
}

func (s *cartService) SetShippingMethod(ctx context.Context, cart *models.Cart, shippingMethodID string) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.SetShippingMethod(shippingMethodID))
}

// AddPayment attaches an invoice payment to the cart. Provider, method and
// status are fixed; amountPlanned defaults field-by-field from the cart's
// current sum when the caller left it out.
func (s *cartService) AddPayment(ctx context.Context, cart *models.Cart, payment models.Payment) (*models.Cart, error) {

	payment.PaymentProvider = models.PaymentProviderDefault
	payment.PaymentMethod = models.PaymentMethodInvoice
	payment.PaymentStatus = models.PaymentStatusPending

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	if payment.AmountPlanned == nil {
		payment.AmountPlanned = &models.Money{}
	}

	if cart.Sum != nil {
		if payment.AmountPlanned.CentAmount == 0 {
			payment.AmountPlanned.CentAmount = cart.Sum.CentAmount
		}

		if payment.AmountPlanned.CurrencyCode == "" {
			payment.AmountPlanned.CurrencyCode = cart.Sum.CurrencyCode
		}
	}

	return s.update(ctx, cart, commerce.AddPayment(&payment))
}

// UpdatePayment returns the payment rather than the cart: the interesting
// state transition (e.g. PENDING to PAID after an external confirmation)
// happens on the payment object itself.
func (s *cartService) UpdatePayment(ctx context.Context, cart *models.Cart, payment models.Payment) (*models.Payment, error) {

	updated, err := s.backend.UpdatePayment(ctx, cart.CartID, &payment)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to update payment")
	}

	return updated, nil
}

func (s *cartService) RedeemDiscountCode(ctx context.Context, cart *models.Cart, code string) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.AddDiscountCode(code))
}

func (s *cartService) RemoveDiscountCode(ctx context.Context, cart *models.Cart, discountCodeID string) (*models.Cart, error) {
	return s.update(ctx, cart, commerce.RemoveDiscountCode(discountCodeID))
}

func (s *cartService) ShippingMethods(ctx context.Context, onlyMatching bool) ([]models.ShippingMethod, error) {

	methods, err := s.backend.ShippingMethods(ctx, onlyMatching)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to list shipping methods")
	}

	return methods, nil
}

func (s *cartService) AvailableShippingMethods(ctx context.Context, cart *models.Cart) ([]models.ShippingMethod, error) {

	methods, err := s.backend.ShippingMethodsForCart(ctx, cart.CartID)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to list available shipping methods")
	}

	return methods, nil
}

func (s *cartService) ReplicateCart(ctx context.Context, orderID string) (*models.Cart, error) {

	cart, err := s.backend.ReplicateCart(ctx, orderID)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to replicate cart")
	}

	return cart, nil
}

func (s *cartService) CheckoutSessionToken(ctx context.Context, cartID string) (*models.Token, error) {

	token, err := s.backend.CheckoutSessionToken(ctx, cartID)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to get checkout session token")
	}

	return token, nil
}

func (s *cartService) update(ctx context.Context, cart *models.Cart, actions ...commerce.CartAction) (*models.Cart, error) {

	updated, err := s.backend.UpdateCart(ctx, cart.CartID, cart.Version, actions)
	if err != nil {
		return nil, wrapBackendError(err, "Failed to update cart")
	}

	return updated, nil
}
