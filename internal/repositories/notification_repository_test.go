package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoFixture(t *testing.T) (sqlmock.Sqlmock, *NotificationRepository) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return dbMock, NewNotificationRepo(db)
}

func TestCreateNotification(t *testing.T) {

	dbMock, repo := repoFixture(t)

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: "ada@example.com",
		Subject:   "Your order 2026-0001 is confirmed",
		Content:   "Thank you for your order.",
		Status:    models.StatusPending,
		Metadata:  json.RawMessage(`{"orderId":"order-1"}`),
	}

	dbMock.ExpectExec("INSERT INTO notifications").
		WithArgs(notification.ID, notification.Type, notification.Recipient, notification.Subject,
			notification.Content, notification.Status, notification.ErrorMessage, []byte(notification.Metadata)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateNotification(context.Background(), notification)

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetNotificationById(t *testing.T) {

	dbMock, repo := repoFixture(t)

	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "type", "recipient", "subject", "content", "status", "error_message", "metadata", "created_at", "updated_at"}).
		AddRow(id, "email", "ada@example.com", "subject", "content", "sent", "", []byte(`{}`), now, now)

	dbMock.ExpectQuery("SELECT (.+) FROM notifications").WithArgs(id).WillReturnRows(rows)

	notification, err := repo.GetNotificationById(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, notification.ID)
	assert.Equal(t, models.StatusSent, notification.Status)
}

func TestUpdateNotificationStatus(t *testing.T) {

	t.Run("updates the row", func(t *testing.T) {
		dbMock, repo := repoFixture(t)

		id := uuid.New()
		dbMock.ExpectExec("UPDATE notifications").
			WithArgs(models.StatusSent, "", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateNotificationStatus(context.Background(), id, models.StatusSent, "")

		assert.NoError(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing row is an error", func(t *testing.T) {
		dbMock, repo := repoFixture(t)

		id := uuid.New()
		dbMock.ExpectExec("UPDATE notifications").
			WithArgs(models.StatusFailed, "smtp timeout", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateNotificationStatus(context.Background(), id, models.StatusFailed, "smtp timeout")

		assert.Error(t, err)
	})
}
