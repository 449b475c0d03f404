package models

// Money is an amount in the currency's smallest unit.
type Money struct {
	CentAmount   int64  `json:"centAmount"`
	CurrencyCode string `json:"currencyCode"`
}

type Variant struct {
	ID    string `json:"id,omitempty"`
	SKU   string `json:"sku,omitempty"`
	Price *Money `json:"price,omitempty"`
}

type LineItem struct {
	LineItemID string   `json:"lineItemId,omitempty"`
	Name       string   `json:"name,omitempty"`
	Variant    *Variant `json:"variant,omitempty"`
	Count      int      `json:"count,omitempty"`
	Price      *Money   `json:"price,omitempty"`
	TotalPrice *Money   `json:"totalPrice,omitempty"`
}

type Address struct {
	AddressID    string `json:"addressId,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	StreetName   string `json:"streetName,omitempty"`
	StreetNumber string `json:"streetNumber,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	PhoneNumber  string `json:"phone,omitempty"`
}

type ShippingMethod struct {
	ShippingMethodID string `json:"shippingMethodId"`
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	Rate             *Money `json:"rate,omitempty"`
}

type PaymentStatus string

const (
	PaymentStatusInit    PaymentStatus = "INIT"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payments attached through the storefront are always invoice payments owned
// by this layer's provider id; external PSP confirmations flip the status.
const (
	PaymentProviderDefault = "commercekit"
	PaymentMethodInvoice   = "invoice"
)

type Payment struct {
	ID              string        `json:"id,omitempty"`
	PaymentProvider string        `json:"paymentProvider,omitempty"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
	AmountPlanned   *Money        `json:"amountPlanned,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus,omitempty"`
}

type Discount struct {
	DiscountCodeID string `json:"discountCodeId,omitempty"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name,omitempty"`
}

// Cart mirrors the commerce backend's cart. Version is the optimistic
// concurrency token: every update must carry the version it was based on.
type Cart struct {
	CartID          string          `json:"cartId"`
	Version         int64           `json:"cartVersion,omitempty"`
	AccountID       string          `json:"accountId,omitempty"`
	Email           string          `json:"email,omitempty"`
	LineItems       []LineItem      `json:"lineItems,omitempty"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	BillingAddress  *Address        `json:"billingAddress,omitempty"`
	ShippingInfo    *ShippingMethod `json:"shippingInfo,omitempty"`
	Payments        []Payment       `json:"payments,omitempty"`
	DiscountCodes   []Discount      `json:"discountCodes,omitempty"`
	Sum             *Money          `json:"sum,omitempty"`
}

// Token is a short-lived checkout session token issued by the backend.
type Token struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}
