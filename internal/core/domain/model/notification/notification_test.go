package notification_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	now := time.Now()

	t.Run("should create unread notification", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), notification.RecipientCustomer,
			kernel.NewUUID(), kernel.NewUUID(), "hello", now)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.False(t, n.IsRead())
		assert.Equal(t, notification.RecipientCustomer, n.RecipientType())
	})

	t.Run("should reject empty message and unknown recipient", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "COOK",
			kernel.NewUUID(), kernel.NewUUID(), "", now)

		require.ErrorIs(t, err, notification.ErrMessageIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	n, err := notification.NewNotification(kernel.NewUUID(), notification.RecipientSeller,
		kernel.NewUUID(), kernel.NewUUID(), "hello", time.Now())
	require.NoError(t, err)

	read := n.MarkRead()
	again := read.MarkRead()

	assert.False(t, n.IsRead())
	assert.True(t, read.IsRead())
	assert.True(t, again.IsRead())
	assert.Equal(t, read.ID(), again.ID())
}

func TestParseRecipientType(t *testing.T) {
	rt, err := notification.ParseRecipientType("courier")
	require.NoError(t, err)
	assert.Equal(t, notification.RecipientCourier, rt)

	_, err = notification.ParseRecipientType("admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMessages(t *testing.T) {
	orderID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	assert.Equal(t,
		`Order 550e8400-e29b-41d4-a716-446655440000 status changed: "Delayed"`,
		notification.CustomerStatusMessage(orderID, order.Delayed))
	assert.Equal(t,
		"New order 550e8400-e29b-41d4-a716-446655440000 from customer Jane",
		notification.SellerNewOrderMessage(orderID, "Jane"))
	assert.Equal(t,
		"New delivery request for order 550e8400-e29b-41d4-a716-446655440000. Pickup address: 1 Main St",
		notification.CourierAssignedMessage(orderID, "1 Main St"))

	for _, st := range order.AllStatuses() {
		assert.NotEqual(t, st.String(), notification.StatusText(st), "missing text for %s", st)
	}
	assert.False(t, notification.IsCustomerVisible(order.SearchingCourier))
	assert.False(t, notification.IsCustomerVisible(order.AwaitingCourier))
	assert.True(t, notification.IsCustomerVisible(order.Cancelled))
}
