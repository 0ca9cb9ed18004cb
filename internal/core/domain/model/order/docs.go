// Package order implements the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: immutable, versioned snapshot of an order; transitions return a new snapshot
//   - Item: immutable order line with exact money arithmetic
//   - Status: the lifecycle states and the rules for moving between them
//   - InvalidStateTransitionError: returned whenever an operation does not fit the current status
//
// Lifecycle:
//
//	IN_PROCESSING -> COOKING -> ASSEMBLING -> SEARCHING_COURIER -> AWAITING_COURIER -> IN_DELIVERY
//	IN_PROCESSING -> CANCELLED (seller rejected or unresponsive)
//	AWAITING_COURIER -> DELAYED -> IN_DELIVERY
//
// CANCELLED and IN_DELIVERY are terminal. A rejected transition never changes the order.
package order
