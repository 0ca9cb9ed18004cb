package queries

import (
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"
)

// OrderItemResponse is one order line. Price is a fixed two-digit decimal string.
type OrderItemResponse struct {
	ProductName string
	Quantity    int
	Price       string
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	SellerID          kernel.UUID
	CourierID         *kernel.UUID
	Status            string
	Items             []OrderItemResponse
	TotalPrice        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	SellerNotifiedAt  *time.Time
	CourierNotifiedAt *time.Time
	CourierAssignedAt *time.Time
	CourierArrivedAt  *time.Time
	CancelledAt       *time.Time
	CancelReason      string
	Version           int64
}

// NewOrderResponse maps an order snapshot to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductName: it.ProductName(),
			Quantity:    it.Quantity(),
			Price:       it.Price().String(),
		})
	}

	return OrderResponse{
		ID:                o.ID(),
		CustomerID:        o.CustomerID(),
		SellerID:          o.SellerID(),
		CourierID:         o.CourierID(),
		Status:            o.Status().String(),
		Items:             items,
		TotalPrice:        o.TotalPrice().String(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		SellerNotifiedAt:  o.SellerNotifiedAt(),
		CourierNotifiedAt: o.CourierNotifiedAt(),
		CourierAssignedAt: o.CourierAssignedAt(),
		CourierArrivedAt:  o.CourierArrivedAt(),
		CancelledAt:       o.CancelledAt(),
		CancelReason:      o.CancelReason(),
		Version:           o.Version(),
	}
}

type CourierResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Available bool
	CreatedAt time.Time
}

func NewCourierResponse(c *courier.Courier) CourierResponse {
	return CourierResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Available: c.IsAvailable(),
		CreatedAt: c.CreatedAt(),
	}
}

type CustomerResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
	}
}

type SellerResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	CreatedAt time.Time
}

func NewSellerResponse(s *seller.Seller) SellerResponse {
	return SellerResponse{
		ID:        s.ID(),
		Name:      s.Name(),
		Address:   s.Address(),
		CreatedAt: s.CreatedAt(),
	}
}

type NotificationResponse struct {
	ID            kernel.UUID
	RecipientType string
	RecipientID   kernel.UUID
	OrderID       kernel.UUID
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}

func newNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID(),
		RecipientType: n.RecipientType().String(),
		RecipientID:   n.RecipientID(),
		OrderID:       n.OrderID(),
		Message:       n.Message(),
		IsRead:        n.IsRead(),
		CreatedAt:     n.CreatedAt(),
	}
}
