package commands

import (
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is the raw input for one item of a new order. Price is a decimal string
// such as "10.00" so no precision is lost before it reaches kernel.Money.
type OrderLine struct {
	ProductName string
	Quantity    int
	Price       string
}

// CreateOrderCommand places a new order for a customer at a seller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, sellerID,
//	    []OrderLine{{ProductName: "pizza", Quantity: 2, Price: "10.00"}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	sellerID   kernel.UUID
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids and every line.
func NewCreateOrderCommand(orderID, customerID, sellerID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	errList := []error{orderID.Validate(), customerID.Validate(), sellerID.Validate()}
	if len(lines) == 0 {
		errList = append(errList, order.ErrItemsAreRequired)
	}

	items := make([]order.Item, 0, len(lines))
	for i, line := range lines {
		price, err := kernel.MoneyFromString(line.Price)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		it, err := order.NewItem(line.ProductName, line.Quantity, price)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, it)
	}

	if err := errors.Join(errList...); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:    orderID,
		customerID: customerID,
		sellerID:   sellerID,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) SellerID() kernel.UUID   { return c.sellerID }
func (c CreateOrderCommand) Items() []order.Item     { return append([]order.Item(nil), c.items...) }
