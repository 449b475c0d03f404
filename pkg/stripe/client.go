package stripe

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

// Client verifies incoming PSP webhooks. The key is set globally the way the
// stripe SDK expects.
type Client interface {
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}
