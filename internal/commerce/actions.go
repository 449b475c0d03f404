package commerce

import "github.com/commercekit/storefront-bff/internal/models"

// CartAction is one entry of a version-checked cart update. The backend
// dispatches on the "action" key.
type CartAction map[string]any

func action(name string, fields map[string]any) CartAction {
	a := CartAction{"action": name}
	for k, v := range fields {
		a[k] = v
	}

	return a
}

func SetCustomerEmail(email string) CartAction {
	return action("setCustomerEmail", map[string]any{"email": email})
}

func SetShippingAddress(address *models.Address) CartAction {
	return action("setShippingAddress", map[string]any{"address": address})
}

func SetBillingAddress(address *models.Address) CartAction {
	return action("setBillingAddress", map[string]any{"address": address})
}

func AddLineItem(sku string, count int) CartAction {
	return action("addLineItem", map[string]any{"sku": sku, "count": count})
}

func ChangeLineItemQuantity(lineItemID string, count int) CartAction {
	return action("changeLineItemQuantity", map[string]any{"lineItemId": lineItemID, "count": count})
}

func RemoveLineItem(lineItemID string) CartAction {
	return action("removeLineItem", map[string]any{"lineItemId": lineItemID})
}

func SetShippingMethod(shippingMethodID string) CartAction {
	return action("setShippingMethod", map[string]any{"shippingMethodId": shippingMethodID})
}

func AddPayment(payment *models.Payment) CartAction {
	return action("addPayment", map[string]any{"payment": payment})
}

func AddDiscountCode(code string) CartAction {
	return action("addDiscountCode", map[string]any{"code": code})
}

func RemoveDiscountCode(discountCodeID string) CartAction {
	return action("removeDiscountCode", map[string]any{"discountCodeId": discountCodeID})
}
