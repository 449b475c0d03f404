package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{name: "missing count", input: nil, expected: 1},
		{name: "json number", input: float64(3), expected: 3},
		{name: "zero", input: float64(0), expected: 1},
		{name: "negative", input: float64(-2), expected: 1},
		{name: "int", input: 5, expected: 5},
		{name: "numeric string", input: "4", expected: 4},
		{name: "garbage string", input: "many", expected: 1},
		{name: "empty string", input: "", expected: 1},
		{name: "json.Number", input: json.Number("7"), expected: 7},
		{name: "boolean", input: true, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeCount(tc.input))
		})
	}
}

func TestNormalizeCountFromDecodedBody(t *testing.T) {

	// Counts arrive through generic JSON decoding, so they show up as float64.
	var req AddLineItemRequest

	err := json.Unmarshal([]byte(`{"variant":{"sku":"SKU-1","count":2}}`), &req)

	assert.NoError(t, err)
	assert.Equal(t, 2, NormalizeCount(req.Variant.Count))
}

func TestSessionDataCartBinding(t *testing.T) {

	session := SessionData{AccountID: "acc-1"}

	bound := session.WithCart("cart-1")
	assert.Equal(t, "cart-1", bound.CartID)
	assert.Empty(t, session.CartID, "original value stays untouched")

	cleared := bound.WithoutCart()
	assert.Empty(t, cleared.CartID)
	assert.Equal(t, "acc-1", cleared.AccountID)
}
