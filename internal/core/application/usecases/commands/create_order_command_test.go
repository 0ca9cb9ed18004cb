package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should build items from lines", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderLine{
				{ProductName: "pizza", Quantity: 2, Price: "10.00"},
				{ProductName: "cola", Quantity: 1, Price: "1.5"},
			})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Len(t, cmd.Items(), 2)
		assert.Equal(t, "21.50", order.TotalPrice(cmd.Items()).String())
	})

	t.Run("should reject bad lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderLine{
				{ProductName: "", Quantity: 1, Price: "1.00"},
				{ProductName: "cola", Quantity: 0, Price: "1.00"},
				{ProductName: "tea", Quantity: 1, Price: "-1"},
			})

		require.ErrorIs(t, err, order.ErrProductNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require at least one line", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
