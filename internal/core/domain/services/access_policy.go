package services

import (
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
)

// AccessPolicy centralizes who may read, message, and transition orders.
// All role branching in the application layer goes through these predicates
// instead of inline role checks per endpoint.
//
// Whether customers may cancel their own orders is a policy parameter rather
// than a hard-coded rule; the default configuration keeps cancellation
// staff-only.
type AccessPolicy struct {
	allowCustomerCancellation bool
}

// NewAccessPolicy creates the access policy.
// allowCustomerCancellation opens the CANCELLED transition to the owning
// customer in addition to transition-authorized staff.
func NewAccessPolicy(allowCustomerCancellation bool) AccessPolicy {
	return AccessPolicy{allowCustomerCancellation: allowCustomerCancellation}
}

// CanReadOrder reports whether the role may read an order.
// Staff read any order; customers only their own.
func (p AccessPolicy) CanReadOrder(role user.Role, isOwner bool) bool {
	return role.IsStaff() || isOwner
}

// CanPostMessage reports whether the role may append to an order's thread.
// The thread is open to staff and to the owning customer.
func (p AccessPolicy) CanPostMessage(role user.Role, isOwner bool) bool {
	return role.IsStaff() || isOwner
}

// CanListAllOrders reports whether the role may list orders across customers.
func (p AccessPolicy) CanListAllOrders(role user.Role) bool {
	return role.IsStaff()
}

// CanTransition reports whether the role may request moving an order to
// target. Administrators and operators hold general transition authority;
// the owning customer may request cancellation when the policy allows it.
// Whether the transition itself is admissible from the current status is the
// state machine's decision, not this policy's.
func (p AccessPolicy) CanTransition(role user.Role, isOwner bool, target order.Status) bool {
	if role.CanTransitionOrders() {
		return true
	}
	if p.allowCustomerCancellation && role == user.Customer && isOwner && target == order.Cancelled {
		return true
	}
	return false
}
