// Package order provides domain entities and business logic for order management
// in the storefront. It implements the Order aggregate root with lifecycle
// management, state transitions, and an append-only audit history.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, lifecycle, and history
//   - Status: a state machine that enforces valid order status transitions
//   - Item: an order line combining a product with a fabric selection
//   - HistoryEntry: an immutable audit record of one accepted transition
//
// Key business rules:
//   - Orders must have a valid identifier, code, owning customer, and at least one item
//   - Status follows the production path PLACED -> AWAITING_APPROVAL -> APPROVED ->
//     IN_PRODUCTION -> SHIPPED -> DELIVERED, where factory review is skippable
//     (PLACED may move directly to APPROVED), REJECTED is reachable before
//     production and CANCELLED from any non-terminal status
//   - DELIVERED, REJECTED, and CANCELLED are terminal
//   - Every accepted transition appends exactly one history entry, and the last
//     entry's status always equals the order's current status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
