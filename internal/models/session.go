package models

// SessionData is the projection of a shopper's session that travels with every
// response envelope. It binds the session to at most one cart.
type SessionData struct {
	CartID      string `json:"cartId,omitempty"`
	AccountID   string `json:"accountId,omitempty"`
	AnonymousID string `json:"anonymousId,omitempty"`
}

// WithCart returns a copy bound to the given cart.
func (s SessionData) WithCart(cartID string) SessionData {
	s.CartID = cartID
	return s
}

// WithoutCart returns a copy with the cart binding dropped.
func (s SessionData) WithoutCart() SessionData {
	s.CartID = ""
	return s
}
