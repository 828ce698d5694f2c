package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of an order: a product combined with a fabric selection and
// a quantity. Items are owned exclusively by their Order, fixed at order
// creation, and removed only by cascading order deletion.
type Item struct {
	id          kernel.UUID
	productName string
	fabricName  string
	fabricGrade string
	quantity    int

	isConstructed bool
}

// NewItem creates a validated order line.
// Product and fabric names must be non-blank, the fabric grade is free-form
// but non-blank, and the quantity must be positive.
func NewItem(id kernel.UUID, productName, fabricName, fabricGrade string, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setFabric(fabricName, fabricGrade),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the ordered product's name.
func (i Item) ProductName() string {
	return i.productName
}

// FabricName returns the selected fabric.
func (i Item) FabricName() string {
	return i.fabricName
}

// FabricGrade returns the selected fabric size/grade.
func (i Item) FabricGrade() string {
	return i.fabricGrade
}

// Quantity returns the line quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *Item) setFabric(name, grade string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("fabric name")
	}
	if strings.TrimSpace(grade) == "" {
		return errs.NewValueIsRequiredError("fabric grade")
	}
	i.fabricName = name
	i.fabricGrade = grade
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
