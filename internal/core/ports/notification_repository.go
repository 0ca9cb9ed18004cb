package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
)

// NotificationRepository stores notifications. It never deletes.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// Get returns the notification or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkRead sets the read flag. It succeeds when the flag is already set and
	// returns errs.ErrObjectNotFound when id is unknown.
	MarkRead(ctx context.Context, id kernel.UUID) error

	// ListByRecipient returns the recipient's notifications newest first. Notifications
	// created at the same instant are returned in reverse insertion order.
	ListByRecipient(
		ctx context.Context,
		recipientType notification.RecipientType,
		recipientID kernel.UUID,
		unreadOnly bool,
	) ([]*notification.Notification, error)
}
