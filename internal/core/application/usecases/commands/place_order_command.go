package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrOrderLinesAreRequired   = errors.New("at least one order line is required")
)

// OrderLine describes one requested piece of furniture: the product, the
// fabric it should be upholstered in, and how many units.
type OrderLine struct {
	ProductName string
	FabricName  string
	FabricGrade string
	Quantity    int
}

// PlaceOrderCommand represents a request to place a new furniture order on
// behalf of a customer. Carries the customer identity resolved at checkout
// and the requested order lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, "ana@example.com", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, factoryGroupEmail)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	customerEmail string
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid, the customer email is not empty,
// and at least one order line is present. Line contents are validated by the
// domain when the order is built.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerEmail string,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCustomer(customerID, customerEmail),
		placeCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the owning customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerEmail returns the customer's notification address.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customerID kernel.UUID, customerEmail string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerEmail == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerID = customerID
	c.customerEmail = customerEmail
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
