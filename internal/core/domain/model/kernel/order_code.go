package kernel

import (
	"fmt"
	"regexp"

	"storefront/internal/pkg/errs"
)

// orderCodePattern matches the canonical code format: a fixed prefix followed
// by a positive sequence number, e.g. "ORD-1001".
var orderCodePattern = regexp.MustCompile(`^ORD-[1-9][0-9]*$`)

// ErrOrderCodeIsNotConstructed indicates that an OrderCode was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value OrderCode.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderCode must be created via NewOrderCode or OrderCodeFromString",
)

// OrderCode is a value object holding the human-readable, unique, sortable
// code assigned to an order (e.g. "ORD-1001"). The numeric suffix comes from a
// monotonically growing sequence, so lexicographic ordering of equal-width
// codes matches creation order within a width class.
//
// The zero value is invalid; construct codes with NewOrderCode (from a
// sequence number) or OrderCodeFromString (when reconstructing from
// persistence or parsing external input).
type OrderCode struct {
	value string
}

// NewOrderCode builds an OrderCode from a positive sequence number.
//
// Example:
//
//	code, err := kernel.NewOrderCode(1001)
//	// code.String() == "ORD-1001"
func NewOrderCode(sequence int64) (OrderCode, error) {
	if sequence <= 0 {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause(
			"order code sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	return OrderCode{value: fmt.Sprintf("ORD-%d", sequence)}, nil
}

// OrderCodeFromString parses an OrderCode from its canonical string form.
// Returns an error if the string does not match the "ORD-<n>" format.
func OrderCodeFromString(s string) (OrderCode, error) {
	if !orderCodePattern.MatchString(s) {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause(
			"order code",
			fmt.Errorf("%q does not match the ORD-<n> format", s),
		)
	}
	return OrderCode{value: s}, nil
}

// String returns the canonical string form of the code.
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two order codes for equality.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate checks that the OrderCode was created through a constructor.
// Returns ErrOrderCodeIsNotConstructed for the zero value.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return ErrOrderCodeIsNotConstructed
	}
	return nil
}
