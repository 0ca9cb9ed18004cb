package queries

import (
	"context"
)

type ListNotificationsQueryHandler struct {
	repos RepositoriesFactory
}

func NewListNotificationsQueryHandler(repos RepositoriesFactory) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{repos: repos}
}

// Handle returns an empty slice, not an error, for a recipient with no notifications.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.repos.Create().NotificationRepository().
		ListByRecipient(ctx, query.RecipientType(), query.RecipientID(), query.UnreadOnly())
	if err != nil {
		return nil, err
	}

	result := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, newNotificationResponse(n))
	}

	return result, nil
}
