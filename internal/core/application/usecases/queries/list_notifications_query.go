package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery reads one recipient's inbox, newest first.
type ListNotificationsQuery struct {
	recipientType notification.RecipientType
	recipientID   kernel.UUID
	unreadOnly    bool
	guard         guard.ConstructorGuard
}

func NewListNotificationsQuery(
	recipientType notification.RecipientType,
	recipientID kernel.UUID,
	unreadOnly bool,
) (ListNotificationsQuery, error) {
	if err := errors.Join(recipientType.Validate(), recipientID.Validate()); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		recipientType: recipientType,
		recipientID:   recipientID,
		unreadOnly:    unreadOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) RecipientType() notification.RecipientType { return q.recipientType }
func (q ListNotificationsQuery) RecipientID() kernel.UUID                  { return q.recipientID }
func (q ListNotificationsQuery) UnreadOnly() bool                          { return q.unreadOnly }
