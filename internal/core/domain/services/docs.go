// Package services provides domain services that coordinate more than one aggregate.
//
// The package includes:
//   - CourierDispatcher: picks the courier for an order and pairs the two snapshots
//   - NotificationDispatcher: composes the notifications that accompany each transition
//
// Both are stateless and free of I/O. Persistence and locking belong to the
// application layer.
package services
