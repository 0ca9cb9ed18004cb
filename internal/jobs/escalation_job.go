package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
)

type (
	// SellerTimeoutHandler cancels orders the seller never reviewed.
	SellerTimeoutHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOverdueOrdersCommand) (commands.EscalationReport, error)
	}

	// CourierTimeoutHandler marks orders whose courier is late.
	CourierTimeoutHandler interface {
		Handle(ctx context.Context, cmd commands.MarkDelayedOrdersCommand) (commands.EscalationReport, error)
	}
)

// escalationJob holds what both sweeps share: reporting and metrics.
type escalationJob struct {
	name    string
	sweep   func(ctx context.Context) (commands.EscalationReport, error)
	metrics *EscalationMetrics
	logger  *slog.Logger
}

func (j *escalationJob) Name() string { return j.name }

// Run performs one sweep. Errors are logged and counted, never returned.
func (j *escalationJob) Run(ctx context.Context) {
	started := time.Now()

	report, err := j.sweep(ctx)
	if err != nil {
		j.metrics.observeError(j.name)
		j.logger.ErrorContext(ctx, "Timer sweep failed", "error", err)
		return
	}

	j.metrics.observe(j.name, len(report.Escalated), len(report.Skipped), len(report.Failures))

	for _, f := range report.Failures {
		j.logger.ErrorContext(ctx, "Order escalation failed",
			"order_id", f.OrderID.String(),
			"error", f.Err)
	}

	if report.Scanned > 0 {
		j.logger.InfoContext(ctx, "Timer sweep finished",
			"scanned", report.Scanned,
			"escalated", len(report.Escalated),
			"skipped", len(report.Skipped),
			"failed", len(report.Failures),
			"duration", time.Since(started))
	}
}

// SellerTimeoutJob cancels IN_PROCESSING orders the seller left unanswered.
type SellerTimeoutJob struct {
	escalationJob
}

func NewSellerTimeoutJob(
	handler SellerTimeoutHandler,
	timeout time.Duration,
	metrics *EscalationMetrics,
	logger *slog.Logger,
) (*SellerTimeoutJob, error) {
	cmd, err := commands.NewCancelOverdueOrdersCommand(timeout)
	if err != nil {
		return nil, err
	}

	const name = "seller_timeout"
	return &SellerTimeoutJob{escalationJob{
		name: name,
		sweep: func(ctx context.Context) (commands.EscalationReport, error) {
			return handler.Handle(ctx, cmd)
		},
		metrics: metrics,
		logger:  logger.With("component", name+"_job", "timeout", timeout),
	}}, nil
}

// CourierTimeoutJob moves AWAITING_COURIER orders to DELAYED once the courier is late.
type CourierTimeoutJob struct {
	escalationJob
}

func NewCourierTimeoutJob(
	handler CourierTimeoutHandler,
	timeout time.Duration,
	metrics *EscalationMetrics,
	logger *slog.Logger,
) (*CourierTimeoutJob, error) {
	cmd, err := commands.NewMarkDelayedOrdersCommand(timeout)
	if err != nil {
		return nil, err
	}

	const name = "courier_timeout"
	return &CourierTimeoutJob{escalationJob{
		name: name,
		sweep: func(ctx context.Context) (commands.EscalationReport, error) {
			return handler.Handle(ctx, cmd)
		},
		metrics: metrics,
		logger:  logger.With("component", name+"_job", "timeout", timeout),
	}}, nil
}
