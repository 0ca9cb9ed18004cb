package commands_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/seller"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func pizzaOrder(t *testing.T, customerID, sellerID kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	it, err := order.NewItem("pizza", 2, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, sellerID, []order.Item{it}, at)
	require.NoError(t, err)
	return o
}

func cookingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := pizzaOrder(t, kernel.NewUUID(), kernel.NewUUID(), baseTime).Review(true, "", baseTime)
	require.NoError(t, err)
	return o
}

func awaitingOrder(t *testing.T, courierID kernel.UUID, assignedAt time.Time) *order.Order {
	t.Helper()
	o, err := cookingOrder(t).Assemble(assignedAt)
	require.NoError(t, err)
	o, err = o.StartCourierSearch(assignedAt)
	require.NoError(t, err)
	o, err = o.AssignCourier(courierID, assignedAt)
	require.NoError(t, err)
	return o
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Jane", "jane@example.com", "", baseTime)
	require.NoError(t, err)
	return c
}

func testSeller(t *testing.T) *seller.Seller {
	t.Helper()
	s, err := seller.NewSeller(kernel.NewUUID(), "Luigi's", "1 Main St", baseTime)
	require.NoError(t, err)
	return s
}

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", "", baseTime)
	require.NoError(t, err)
	return c
}
