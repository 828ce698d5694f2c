// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain pending notification
// outbox records: sends the email through the mail relay, publishes the
// order-status-changed event, and records the delivery outcome.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. Delivery is at-least-once: a record stays pending until a send
// attempt succeeds or the attempt bound is reached.
//
// # Error Handling
//
// - An empty outbox is the normal idle state and is not logged
// - Send failures are recorded on the outbox row and retried on later ticks
// - Failed job starts will stop any already running jobs
package jobs
