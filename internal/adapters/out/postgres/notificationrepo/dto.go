// Package notificationrepo maps notifications to the notifications table.
package notificationrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is one row of the notifications table. Seq records insertion
// order and breaks ties between notifications created at the same instant.
type NotificationDTO struct {
	Seq           int64     `gorm:"primaryKey;autoIncrement"`
	ID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	RecipientType string    `gorm:"type:varchar(16);not null;index:idx_notifications_recipient,priority:1"`
	RecipientID   uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient,priority:2"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Message       string    `gorm:"type:text;not null"`
	IsRead        bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            n.ID().Bytes(),
		RecipientType: n.RecipientType().String(),
		RecipientID:   n.RecipientID().Bytes(),
		OrderID:       n.OrderID().Bytes(),
		Message:       n.Message(),
		IsRead:        n.IsRead(),
		CreatedAt:     n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	recipientType, err := notification.ParseRecipientType(dto.RecipientType)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, recipientType, recipientID, orderID, dto.Message, dto.IsRead, dto.CreatedAt.UTC())
}
