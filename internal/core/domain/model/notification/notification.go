package notification

import (
	"errors"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrMessageIsRequired            = errs.NewValueIsRequiredError("message")
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

// Notification is a message addressed to one recipient about one order.
// It never changes after creation except for the read flag, which MarkRead sets
// on a copy.
type Notification struct {
	id            kernel.UUID
	recipientType RecipientType
	recipientID   kernel.UUID
	orderID       kernel.UUID
	message       string
	isRead        bool
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NewNotification creates an unread notification.
func NewNotification(
	id kernel.UUID,
	recipientType RecipientType,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	message string,
	createdAt time.Time,
) (*Notification, error) {
	return RestoreNotification(id, recipientType, recipientID, orderID, message, false, createdAt)
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	recipientType RecipientType,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	message string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	var messageErr error
	if strings.TrimSpace(message) == "" {
		messageErr = ErrMessageIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		recipientType.Validate(),
		recipientID.Validate(),
		orderID.Validate(),
		messageErr,
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipientType: recipientType,
		recipientID:   recipientID,
		orderID:       orderID,
		message:       message,
		isRead:        isRead,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID              { return n.id }
func (n *Notification) RecipientType() RecipientType { return n.recipientType }
func (n *Notification) RecipientID() kernel.UUID     { return n.recipientID }
func (n *Notification) OrderID() kernel.UUID         { return n.orderID }
func (n *Notification) Message() string              { return n.message }
func (n *Notification) IsRead() bool                 { return n.isRead }
func (n *Notification) CreatedAt() time.Time         { return n.createdAt }

// MarkRead returns a read copy. Marking an already read notification returns an equal copy.
func (n *Notification) MarkRead() *Notification {
	next := *n
	next.isRead = true
	return &next
}
