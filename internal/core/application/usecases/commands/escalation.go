package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// errNotOverdue marks an order that left the overdue set between the scan and the
// escalation, usually because a manual operation got there first.
var errNotOverdue = errors.New("order is no longer overdue")

// EscalationFailure records one order whose escalation failed.
type EscalationFailure struct {
	OrderID kernel.UUID
	Err     error
}

// EscalationReport summarizes one timer sweep. A failure on one order never stops
// the others from being processed.
type EscalationReport struct {
	Scanned   int
	Escalated []kernel.UUID
	Skipped   []kernel.UUID
	Failures  []EscalationFailure
}

// Err joins all per-order failures, or returns nil when there were none.
func (r EscalationReport) Err() error {
	list := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		list = append(list, fmt.Errorf("order %s: %w", f.OrderID.String(), f.Err))
	}
	return errors.Join(list...)
}

// escalate re-checks and escalates every order in overdue. isOverdue is evaluated
// against a cutoff computed from the time of each individual escalation.
func escalate(
	ctx context.Context,
	t orderTransitioner,
	timeout time.Duration,
	overdue []*order.Order,
	isOverdue func(o *order.Order, cutoff time.Time) bool,
	transition func(o *order.Order, now time.Time) (*order.Order, error),
) EscalationReport {
	report := EscalationReport{Scanned: len(overdue)}

	for _, candidate := range overdue {
		if ctx.Err() != nil {
			report.Failures = append(report.Failures, EscalationFailure{OrderID: candidate.ID(), Err: ctx.Err()})
			continue
		}

		_, err := t.apply(ctx, candidate.ID(),
			func(_ context.Context, _ UoW, current *order.Order, now time.Time) (*order.Order, error) {
				if !isOverdue(current, now.Add(-timeout)) {
					return nil, errNotOverdue
				}
				return transition(current, now)
			})

		switch {
		case err == nil:
			report.Escalated = append(report.Escalated, candidate.ID())
		case errors.Is(err, errNotOverdue), errors.Is(err, errs.ErrVersionIsInvalid):
			report.Skipped = append(report.Skipped, candidate.ID())
		default:
			report.Failures = append(report.Failures, EscalationFailure{OrderID: candidate.ID(), Err: err})
		}
	}

	return report
}

func validateTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("timeout", fmt.Errorf("%s is not positive", timeout))
	}
	return nil
}
