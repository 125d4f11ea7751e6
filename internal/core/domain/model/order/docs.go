// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order books a pricing plan at a customer's address. It snapshots the
// plan's price and billing period at creation, progresses through
// PENDING -> ACCEPTED -> IN_PROGRESS -> COMPLETED, and may be assigned a
// worker when accepted. Orders are immutable history once terminal; there is
// no delete operation.
package order
