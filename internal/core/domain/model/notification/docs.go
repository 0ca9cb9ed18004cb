// Package notification provides the Notification entity and the fixed wording used for
// every message the workflow engine sends.
//
// Notifications are append only. The only mutation is MarkRead, which is idempotent.
// Customers hear about IN_PROCESSING, COOKING, ASSEMBLING, DELAYED, IN_DELIVERY and
// CANCELLED; sellers only about new orders; couriers only about assignments.
package notification
