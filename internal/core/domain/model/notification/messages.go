package notification

import (
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// statusTexts is the fixed human readable wording of every order status.
var statusTexts = map[order.Status]string{
	order.Created:          "Created",
	order.InProcessing:     "In processing",
	order.Cooking:          "Cooking",
	order.Assembling:       "Assembling",
	order.SearchingCourier: "Searching for a courier",
	order.AwaitingCourier:  "Awaiting courier",
	order.Delayed:          "Delayed",
	order.InDelivery:       "In delivery",
	order.Cancelled:        "Cancelled",
}

// customerVisible lists the statuses a customer is told about. Courier search and
// courier assignment are internal logistics and produce no customer message.
var customerVisible = map[order.Status]bool{
	order.InProcessing: true,
	order.Cooking:      true,
	order.Assembling:   true,
	order.Delayed:      true,
	order.InDelivery:   true,
	order.Cancelled:    true,
}

// StatusText returns the human readable wording for s.
func StatusText(s order.Status) string {
	if text, ok := statusTexts[s]; ok {
		return text
	}
	return s.String()
}

// IsCustomerVisible reports whether entering s notifies the customer.
func IsCustomerVisible(s order.Status) bool {
	return customerVisible[s]
}

// CustomerStatusMessage is sent to the customer when the order enters a visible status.
func CustomerStatusMessage(orderID kernel.UUID, s order.Status) string {
	return fmt.Sprintf("Order %s status changed: %q", orderID.String(), StatusText(s))
}

// SellerNewOrderMessage is sent to the seller when an order is placed.
func SellerNewOrderMessage(orderID kernel.UUID, customerName string) string {
	return fmt.Sprintf("New order %s from customer %s", orderID.String(), customerName)
}

// CourierAssignedMessage is sent to the courier bound to an order.
func CourierAssignedMessage(orderID kernel.UUID, pickupAddress string) string {
	return fmt.Sprintf("New delivery request for order %s. Pickup address: %s", orderID.String(), pickupAddress)
}
