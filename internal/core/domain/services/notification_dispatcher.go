package services

import (
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"
)

// NotificationDispatcher composes the notifications that accompany order transitions.
// It does not store anything: callers add the returned notifications to the same unit of
// work that persists the order, so a transition and its notifications commit together.
type NotificationDispatcher struct {
	newID func() kernel.UUID
}

// NewNotificationDispatcher returns a dispatcher that gives notifications random ids.
func NewNotificationDispatcher() NotificationDispatcher {
	return NotificationDispatcher{newID: kernel.NewUUID}
}

// Send creates a notification for any recipient.
func (d NotificationDispatcher) Send(
	recipientType notification.RecipientType,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	message string,
	now time.Time,
) (*notification.Notification, error) {
	newID := d.newID
	if newID == nil {
		newID = kernel.NewUUID
	}
	return notification.NewNotification(newID(), recipientType, recipientID, orderID, message, now)
}

// StatusChanged returns the customer notification for the status o is in now.
// It returns nil without error when the status is not one customers are told about.
func (d NotificationDispatcher) StatusChanged(o *order.Order, now time.Time) (*notification.Notification, error) {
	if !notification.IsCustomerVisible(o.Status()) {
		return nil, nil
	}
	return d.Send(notification.RecipientCustomer, o.CustomerID(), o.ID(),
		notification.CustomerStatusMessage(o.ID(), o.Status()), now)
}

// OrderPlaced returns the seller and customer notifications for a newly created order.
func (d NotificationDispatcher) OrderPlaced(
	o *order.Order,
	c *customer.Customer,
	now time.Time,
) ([]*notification.Notification, error) {
	toSeller, err := d.Send(notification.RecipientSeller, o.SellerID(), o.ID(),
		notification.SellerNewOrderMessage(o.ID(), c.Name()), now)
	if err != nil {
		return nil, err
	}

	toCustomer, err := d.StatusChanged(o, now)
	if err != nil {
		return nil, err
	}

	return []*notification.Notification{toSeller, toCustomer}, nil
}

// CourierAssigned returns the courier notification carrying the seller's pickup address.
func (d NotificationDispatcher) CourierAssigned(
	o *order.Order,
	c *courier.Courier,
	s *seller.Seller,
	now time.Time,
) (*notification.Notification, error) {
	return d.Send(notification.RecipientCourier, c.ID(), o.ID(),
		notification.CourierAssignedMessage(o.ID(), s.Address()), now)
}
