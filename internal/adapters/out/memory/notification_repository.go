package memory

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

var _ ports.NotificationRepository = &NotificationRepository{}

type NotificationRepository struct {
	uow *UnitOfWork
}

func (r *NotificationRepository) Add(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	return r.uow.write(func(tx *txn) error {
		tx.notifications = append(tx.notifications, n)
		return nil
	})
}

func (r *NotificationRepository) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	var found *notification.Notification
	if r.uow.tx != nil {
		for _, n := range r.uow.tx.notifications {
			if n.ID().IsEqual(id) {
				found = n
			}
		}
	}

	if found == nil {
		r.uow.store.mu.RLock()
		stored, ok := r.uow.store.notifications[id.String()]
		r.uow.store.mu.RUnlock()
		if !ok {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		found = stored.n
	}

	if r.uow.tx != nil && r.uow.tx.reads[id.String()] {
		return found.MarkRead(), nil
	}
	return found, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return r.uow.write(func(tx *txn) error {
		tx.reads[id.String()] = true
		return nil
	})
}

// ListByRecipient reads committed notifications only.
func (r *NotificationRepository) ListByRecipient(
	_ context.Context,
	recipientType notification.RecipientType,
	recipientID kernel.UUID,
	unreadOnly bool,
) ([]*notification.Notification, error) {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	matched := make([]storedNotification, 0)
	for _, s := range r.uow.store.notifications {
		if s.n.RecipientType() != recipientType || !s.n.RecipientID().IsEqual(recipientID) {
			continue
		}
		if unreadOnly && s.n.IsRead() {
			continue
		}
		matched = append(matched, s)
	}
	return sortedNewestFirst(matched), nil
}
