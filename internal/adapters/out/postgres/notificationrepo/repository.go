package notificationrepo

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.NotificationRepository = &GormNotificationRepository{}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkRead relies on PostgreSQL counting matched rows, so an already read
// notification still reports one affected row.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}

func (r *GormNotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientType notification.RecipientType,
	recipientID kernel.UUID,
	unreadOnly bool,
) ([]*notification.Notification, error) {
	q := r.db.WithContext(ctx).
		Where("recipient_type = ? AND recipient_id = ?", recipientType.String(), recipientID.Bytes())
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var dtos []NotificationDTO
	if err := q.Order("created_at DESC, seq DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	list := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}

	return list, nil
}
