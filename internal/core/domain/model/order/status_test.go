package order_test

import (
	"testing"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "IN_PROCESSING", order.InProcessing.String())
	assert.Equal(t, "SEARCHING_COURIER", order.SearchingCourier.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for _, st := range order.AllStatuses() {
		parsed, err := order.ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}

	parsed, err := order.ParseStatus(" delayed ")
	require.NoError(t, err)
	assert.Equal(t, order.Delayed, parsed)

	_, err = order.ParseStatus("SHIPPED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Cancelled.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, st := range order.AllStatuses() {
		want := st == order.Cancelled || st == order.InDelivery
		assert.Equal(t, want, st.IsTerminal(), st.String())
	}
}
