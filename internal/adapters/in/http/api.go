package http

import (
	"time"

	"ordermanagement/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewSeller struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Seller struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewCourier struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Courier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewOrderItem accepts the price either as a JSON number or as a string.
type NewOrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type NewOrder struct {
	CustomerID uuid.UUID      `json:"customerId"`
	SellerID   uuid.UUID      `json:"sellerId"`
	Items      []NewOrderItem `json:"items"`
}

type ReviewOrder struct {
	CanFulfill   bool   `json:"canFulfill"`
	CancelReason string `json:"cancelReason"`
}

type OrderItem struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

type Order struct {
	ID                uuid.UUID   `json:"id"`
	CustomerID        uuid.UUID   `json:"customerId"`
	SellerID          uuid.UUID   `json:"sellerId"`
	CourierID         *uuid.UUID  `json:"courierId,omitempty"`
	Status            string      `json:"status"`
	TotalPrice        string      `json:"totalPrice"`
	Items             []OrderItem `json:"items"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	SellerNotifiedAt  *time.Time  `json:"sellerNotifiedAt,omitempty"`
	CourierNotifiedAt *time.Time  `json:"courierNotifiedAt,omitempty"`
	CourierAssignedAt *time.Time  `json:"courierAssignedAt,omitempty"`
	CourierArrivedAt  *time.Time  `json:"courierArrivedAt,omitempty"`
	CancelledAt       *time.Time  `json:"cancelledAt,omitempty"`
	CancelReason      string      `json:"cancelReason,omitempty"`
	Version           int64       `json:"version"`
}

type Notification struct {
	ID            uuid.UUID `json:"id"`
	RecipientType string    `json:"recipientType"`
	RecipientID   uuid.UUID `json:"recipientId"`
	OrderID       uuid.UUID `json:"orderId"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{ProductName: it.ProductName, Quantity: it.Quantity, Price: it.Price})
	}

	var courierID *uuid.UUID
	if o.CourierID != nil {
		raw := o.CourierID.Bytes()
		courierID = &raw
	}

	return Order{
		ID:                o.ID.Bytes(),
		CustomerID:        o.CustomerID.Bytes(),
		SellerID:          o.SellerID.Bytes(),
		CourierID:         courierID,
		Status:            o.Status,
		TotalPrice:        o.TotalPrice,
		Items:             items,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		SellerNotifiedAt:  o.SellerNotifiedAt,
		CourierNotifiedAt: o.CourierNotifiedAt,
		CourierAssignedAt: o.CourierAssignedAt,
		CourierArrivedAt:  o.CourierArrivedAt,
		CancelledAt:       o.CancelledAt,
		CancelReason:      o.CancelReason,
		Version:           o.Version,
	}
}

func toOrders(list []queries.OrderResponse) []Order {
	result := make([]Order, 0, len(list))
	for _, o := range list {
		result = append(result, toOrder(o))
	}
	return result
}

func toCourier(c queries.CourierResponse) Courier {
	return Courier{
		ID:        c.ID.Bytes(),
		Name:      c.Name,
		Phone:     c.Phone,
		Available: c.Available,
		CreatedAt: c.CreatedAt,
	}
}

func toCustomer(c queries.CustomerResponse) Customer {
	return Customer{
		ID:        c.ID.Bytes(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func toSeller(s queries.SellerResponse) Seller {
	return Seller{
		ID:        s.ID.Bytes(),
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}

func toNotification(n queries.NotificationResponse) Notification {
	return Notification{
		ID:            n.ID.Bytes(),
		RecipientType: n.RecipientType,
		RecipientID:   n.RecipientID.Bytes(),
		OrderID:       n.OrderID.Bytes(),
		Message:       n.Message,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}
