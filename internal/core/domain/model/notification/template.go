package notification

import (
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// Template identifies which email template a notification uses. The core only
// decides which template to send and with what data; rendering the template
// into markup belongs to the external mail collaborator.
type Template int

const (
	// UnknownTemplate represents an invalid or undefined template.
	UnknownTemplate Template = iota

	// OrderPlaced confirms order creation to the customer.
	OrderPlaced

	// NewOrderForFactory notifies the factory group that an order awaits review.
	NewOrderForFactory

	// OrderConfirmed tells the customer the factory approved the order.
	OrderConfirmed

	// OrderRejected tells the customer the order failed review; carries the reason text.
	OrderRejected

	// OrderStatusUpdated is the catch-all progress update; carries the new status label.
	OrderStatusUpdated
)

// getTemplateStrings returns a map of Template values to their identifiers.
func getTemplateStrings() map[Template]string {
	return map[Template]string{
		UnknownTemplate:    "unknown",
		OrderPlaced:        "order-placed",
		NewOrderForFactory: "new-order-for-factory",
		OrderConfirmed:     "order-confirmed",
		OrderRejected:      "order-rejected",
		OrderStatusUpdated: "order-status-updated",
	}
}

// getValidTemplateStrings returns a map of only valid Template values.
func getValidTemplateStrings() map[Template]string {
	//nolint:exhaustive // UnknownTemplate is intentionally excluded as it's invalid
	return map[Template]string{
		OrderPlaced:        "order-placed",
		NewOrderForFactory: "new-order-for-factory",
		OrderConfirmed:     "order-confirmed",
		OrderRejected:      "order-rejected",
		OrderStatusUpdated: "order-status-updated",
	}
}

// TemplateFromString parses a template identifier back into a Template.
func TemplateFromString(s string) (Template, error) {
	for template, id := range getValidTemplateStrings() {
		if id == s {
			return template, nil
		}
	}
	return UnknownTemplate, errs.NewValueIsInvalidErrorWithCause(
		"template", fmt.Errorf("%q is not a valid template", s),
	)
}

// Validate checks if the Template value is a member of the defined template set.
func (t Template) Validate() error {
	if _, ok := getValidTemplateStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"template", fmt.Errorf("%d is not a valid template", t),
		)
	}
	return nil
}

// String returns the template identifier.
// Returns "unknown" for invalid template values.
func (t Template) String() string {
	if str, ok := getTemplateStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TemplateForStatus maps a reached status to the template sent for it.
//
// Mapping:
//   - PLACED            -> order-placed (customer)
//   - AWAITING_APPROVAL -> new-order-for-factory (factory group)
//   - APPROVED          -> order-confirmed (customer)
//   - REJECTED          -> order-rejected (customer, carries reason)
//   - anything else     -> order-status-updated (customer, carries status label)
func TemplateForStatus(reached order.Status) Template {
	switch reached {
	case order.Placed:
		return OrderPlaced
	case order.AwaitingApproval:
		return NewOrderForFactory
	case order.Approved:
		return OrderConfirmed
	case order.Rejected:
		return OrderRejected
	default:
		return OrderStatusUpdated
	}
}
