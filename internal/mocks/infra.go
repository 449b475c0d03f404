package mocks

import (
	"context"

	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Get(ctx context.Context, sessionID string) (models.SessionData, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.SessionData), args.Error(1)
}

func (m *SessionStore) Put(ctx context.Context, sessionID string, data models.SessionData) error {
	args := m.Called(ctx, sessionID, data)
	return args.Error(0)
}

type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, message *models.EmailMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type StripeClient struct {
	mock.Mock
}

func (m *StripeClient) VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(stripe.Event), args.Error(1)
}
