package user

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Role represents the closed set of user roles in the storefront.
// The role determines both lifecycle-transition authority and message-thread
// read/write scope, so all policy decisions branch on this type instead of
// raw strings scattered through handlers.
//
// Wire labels are the store's canonical Portuguese role names and are the
// values persisted in role snapshots (e.g. on thread messages).
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Administrator has full access: all orders, all transitions, site administration.
	Administrator

	// Operator is day-to-day staff: all orders, lifecycle transitions, thread replies.
	Operator

	// Factory receives production hand-offs. Factory users see orders routed for
	// review but hold no transition authority of their own.
	Factory

	// Customer owns orders. Customers only see and discuss their own orders.
	Customer
)

// getRoleStrings returns a map of Role values to their wire labels.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:   "UNKNOWN",
		Administrator: "ADMINISTRADOR",
		Operator:      "OPERADOR",
		Factory:       "FABRICA",
		Customer:      "CLIENTE",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Administrator: "ADMINISTRADOR",
		Operator:      "OPERADOR",
		Factory:       "FABRICA",
		Customer:      "CLIENTE",
	}
}

// RoleFromString parses a wire label back into a Role.
// Returns an error for labels outside the closed role set.
func RoleFromString(s string) (Role, error) {
	for role, label := range getValidRoleStrings() {
		if label == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is a member of the closed role set.
//
// Returns:
//   - nil if the role is valid
//   - error with details if the role is invalid
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire label of the role.
// Returns "UNKNOWN" for invalid role values.
// Implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsStaff reports whether the role has cross-customer visibility.
// Administrator, Operator, and Factory are staff roles.
func (r Role) IsStaff() bool {
	return r == Administrator || r == Operator || r == Factory
}

// CanTransitionOrders reports whether the role carries lifecycle-transition
// authority. Only Administrator and Operator may move orders through the
// production lifecycle; Factory is read-only staff.
func (r Role) CanTransitionOrders() bool {
	return r == Administrator || r == Operator
}
