package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/commercekit/storefront-bff/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

func TestHandleWebhook(t *testing.T) {

	t.Run("invalid signature is rejected before any processing", func(t *testing.T) {
		payments := new(mocks.PaymentService)
		psp := new(mocks.StripeClient)
		handler := NewPaymentWebhookHandler(payments, psp)

		psp.On("VerifyWebhookSignature", mock.Anything, "bad-sig").
			Return(stripe.Event{}, assert.AnError)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
		r.Header.Set("Stripe-Signature", "bad-sig")
		rec := httptest.NewRecorder()

		handler.HandleWebhook()(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		payments.AssertNotCalled(t, "HandlePaymentEvent", mock.Anything, mock.Anything)
	})

	t.Run("verified event is handed to the payment service", func(t *testing.T) {
		payments := new(mocks.PaymentService)
		psp := new(mocks.StripeClient)
		handler := NewPaymentWebhookHandler(payments, psp)

		event := stripe.Event{Type: "payment_intent.succeeded"}
		psp.On("VerifyWebhookSignature", mock.Anything, "good-sig").Return(event, nil)
		payments.On("HandlePaymentEvent", mock.Anything, event).Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
		r.Header.Set("Stripe-Signature", "good-sig")
		rec := httptest.NewRecorder()

		handler.HandleWebhook()(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"received":true`)
		payments.AssertExpectations(t)
	})

	t.Run("processing failure propagates the error status", func(t *testing.T) {
		payments := new(mocks.PaymentService)
		psp := new(mocks.StripeClient)
		handler := NewPaymentWebhookHandler(payments, psp)

		event := stripe.Event{Type: "payment_intent.succeeded"}
		psp.On("VerifyWebhookSignature", mock.Anything, mock.Anything).Return(event, nil)
		payments.On("HandlePaymentEvent", mock.Anything, event).Return(assert.AnError)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		handler.HandleWebhook()(rec, r)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
