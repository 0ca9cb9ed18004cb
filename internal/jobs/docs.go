// Package jobs runs the timer scheduler of the order workflow.
//
// Two sweeps are scheduled with github.com/robfig/cron/v3:
//
//  1. SellerTimeoutJob cancels orders whose seller did not review them within the
//     seller reaction timeout.
//  2. CourierTimeoutJob marks orders DELAYED when the assigned courier did not
//     arrive within the courier arrival timeout.
//
// # Usage
//
//	metrics := jobs.NewEscalationMetrics(prometheus.DefaultRegisterer)
//	sellerJob, err := jobs.NewSellerTimeoutJob(cancelHandler, cfg.SellerReactionTimeout, metrics, logger)
//	courierJob, err := jobs.NewCourierTimeoutJob(delayHandler, cfg.CourierArrivalTimeout, metrics, logger)
//
//	manager, err := jobs.NewJobManager(cfg.TimerScanInterval, logger, sellerJob, courierJob)
//	if err := manager.StartAll(ctx); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Scheduling
//
// Every job runs on "@every <interval>". Runs of one job never overlap: cron's
// SkipIfStillRunning wrapper drops a tick while the previous sweep is still busy.
// A panic inside a sweep is recovered and logged.
//
// # Error Handling
//
// A sweep never stops at the first bad order. Per-order failures are collected in
// commands.EscalationReport, logged one by one and counted; the next tick retries
// whatever is still overdue.
package jobs
