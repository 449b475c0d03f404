package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	repository "github.com/commercekit/storefront-bff/internal/repositories"
	"github.com/commercekit/storefront-bff/pkg/sendgrid"
	"github.com/google/uuid"
)

// NotificationService sends the order-confirmation email and keeps an audit
// log of every attempt.
type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type notificationService struct {
	repo   *repository.NotificationRepository
	mailer sendgrid.Mailer
}

func NewNotificationService(repo *repository.NotificationRepository, mailer sendgrid.Mailer) NotificationService {
	return &notificationService{repo: repo, mailer: mailer}
}

func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {

	if order.Email == "" {
		return appErrors.ValidationError("Order has no email address for the confirmation")
	}

	subject := fmt.Sprintf("Your order %s is confirmed", orderReference(order))
	content := confirmationText(order)

	metadata, err := json.Marshal(map[string]string{
		"orderId": order.OrderID,
		"cartId":  order.CartID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification metadata: %w", err)
	}

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: order.Email,
		Subject:   subject,
		Content:   content,
		Status:    models.StatusPending,
		Metadata:  metadata,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	err = n.mailer.Send(ctx, &models.EmailMessage{
		To:      order.Email,
		Subject: subject,
		Content: content,
	})

	if err != nil {
		_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, err.Error())

		return appErrors.ExternalSystemError("Failed to send order confirmation").WithError(err)
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return fmt.Errorf("confirmation sent but failed to update notification status: %w", err)
	}

	return nil
}

func orderReference(order *models.Order) string {
	if order.OrderNumber != "" {
		return order.OrderNumber
	}

	return order.OrderID
}

func confirmationText(order *models.Order) string {

	total := ""
	if order.Sum != nil {
		total = fmt.Sprintf("%.2f %s", float64(order.Sum.CentAmount)/100, order.Sum.CurrencyCode)
	}

	text := fmt.Sprintf("Thank you for your order %s.\n", orderReference(order))

	for _, item := range order.LineItems {
		text += fmt.Sprintf("- %dx %s\n", item.Count, lineItemLabel(item))
	}

	if total != "" {
		text += fmt.Sprintf("Total: %s\n", total)
	}

	return text
}

func lineItemLabel(item models.LineItem) string {
	if item.Name != "" {
		return item.Name
	}

	if item.Variant != nil {
		return item.Variant.SKU
	}

	return item.LineItemID
}
