package commands

import (
	"context"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// SellerTimeoutReason is recorded on orders cancelled because the seller did not
// review them within timeout.
func SellerTimeoutReason(timeout time.Duration) string {
	return fmt.Sprintf("seller unresponsive: order was not reviewed within %s", timeout)
}

// CancelOverdueOrdersCommandHandler cancels InProcessing orders whose seller was notified
// more than the timeout ago. Each order is handled in its own lock and unit of work.
type CancelOverdueOrdersCommandHandler struct {
	transitioner orderTransitioner
}

func NewCancelOverdueOrdersCommandHandler(uowFactory UoWFactory, locks OrderLocker, clock ports.Clock) CancelOverdueOrdersCommandHandler {
	return CancelOverdueOrdersCommandHandler{transitioner: newOrderTransitioner(uowFactory, locks, clock)}
}

// Handle returns an error only when the overdue set could not be listed. Per-order
// failures are reported in EscalationReport.Failures.
func (h CancelOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd CancelOverdueOrdersCommand) (EscalationReport, error) {
	if err := cmd.Validate(); err != nil {
		return EscalationReport{}, err
	}

	cutoff := h.transitioner.clock.Now().Add(-cmd.Timeout())
	overdue, err := h.transitioner.uowFactory.Create().OrderRepository().GetAllInProcessingNotifiedBefore(ctx, cutoff)
	if err != nil {
		return EscalationReport{}, fmt.Errorf("list orders awaiting seller: %w", err)
	}

	return escalate(ctx, h.transitioner, cmd.Timeout(), overdue,
		(*order.Order).SellerOverdue,
		func(o *order.Order, now time.Time) (*order.Order, error) {
			return o.Cancel(SellerTimeoutReason(cmd.Timeout()), now)
		}), nil
}
