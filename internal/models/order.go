package models

import "time"

type OrderState string

const (
	OrderStateOpen      OrderState = "Open"
	OrderStateConfirmed OrderState = "Confirmed"
	OrderStateComplete  OrderState = "Complete"
	OrderStateCancelled OrderState = "Cancelled"
)

// Order keeps the id of the cart it was created from; that link is what the
// anonymous ownership guard checks.
type Order struct {
	OrderID             string     `json:"orderId"`
	OrderNumber         string     `json:"orderNumber,omitempty"`
	CartID              string     `json:"cartId,omitempty"`
	AccountID           string     `json:"accountId,omitempty"`
	OrderState          OrderState `json:"orderState,omitempty"`
	Email               string     `json:"email,omitempty"`
	PurchaseOrderNumber string     `json:"purchaseOrderNumber,omitempty"`
	LineItems           []LineItem `json:"lineItems,omitempty"`
	ShippingAddress     *Address   `json:"shippingAddress,omitempty"`
	BillingAddress      *Address   `json:"billingAddress,omitempty"`
	Sum                 *Money     `json:"sum,omitempty"`
	CreatedAt           time.Time  `json:"createdAt,omitempty"`
}

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// OrderQuery scopes an order listing. AccountID is mandatory for listings and
// always comes from verified claims, never from client input.
type OrderQuery struct {
	AccountID      string
	OrderIDs       []string
	OrderNumbers   []string
	OrderStates    []string
	Query          string
	SortAttributes map[string]SortOrder
	Limit          int
	Cursor         string
}

type OrderPage struct {
	Items  []Order `json:"items"`
	Count  int     `json:"count"`
	Total  int64   `json:"total,omitempty"`
	Cursor string  `json:"cursor,omitempty"`
}
