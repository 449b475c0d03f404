package models

import (
	"encoding/json"
	"strconv"
)

// VariantInput identifies a purchasable variant by SKU. Count deliberately
// stays untyped: storefronts send numbers, numeric strings or nothing at all,
// and anything unusable normalizes to 1.
type VariantInput struct {
	SKU   string `json:"sku" validate:"required"`
	Count any    `json:"count"`
}

type LineItemInput struct {
	ID    string `json:"id" validate:"required"`
	Count any    `json:"count"`
}

type AddLineItemRequest struct {
	Variant *VariantInput `json:"variant" validate:"required"`
}

type UpdateLineItemRequest struct {
	LineItem *LineItemInput `json:"lineItem" validate:"required"`
}

type RemoveLineItemRequest struct {
	LineItem *LineItemInput `json:"lineItem" validate:"required"`
}

type AccountInput struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type UpdateCartRequest struct {
	Account  *AccountInput `json:"account"`
	Shipping *Address      `json:"shipping"`
	Billing  *Address      `json:"billing"`
}

type CheckoutRequest struct {
	UpdateCartRequest
	PurchaseOrderNumber string `json:"purchaseOrderNumber"`
}

type ShippingMethodInput struct {
	ID string `json:"id" validate:"required"`
}

type SetShippingMethodRequest struct {
	ShippingMethod *ShippingMethodInput `json:"shippingMethod" validate:"required"`
}

type PaymentInput struct {
	ID            string        `json:"id"`
	AmountPlanned *Money        `json:"amountPlanned"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

type AddPaymentRequest struct {
	Payment *PaymentInput `json:"payment"`
}

type UpdatePaymentRequest struct {
	Payment *PaymentInput `json:"payment" validate:"required"`
}

type RedeemDiscountRequest struct {
	Code string `json:"code" validate:"required"`
}

type RemoveDiscountRequest struct {
	DiscountCodeID string `json:"discountCodeId" validate:"required"`
}

// NormalizeCount coerces whatever the client sent into a usable quantity.
// Anything that is not a number of at least one becomes exactly 1.
func NormalizeCount(v any) int {
	switch n := v.(type) {
	case float64:
		if n >= 1 {
			return int(n)
		}
	case int:
		if n >= 1 {
			return n
		}
	case json.Number:
		if parsed, err := n.Int64(); err == nil && parsed >= 1 {
			return int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(n); err == nil && parsed >= 1 {
			return parsed
		}
	}

	return 1
}
