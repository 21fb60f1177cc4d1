package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand asks to add one line to an existing order.
//
// Price and quantity are carried as given: the order aggregate validates them
// and reports failures as order.IncorrectItemError.
//
// Example:
//
//	cmd, err := NewAddItemCommand(orderID, 42, "notebook", 3.5, 2)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrIncorrectItem) {
//	    // rejected price or quantity
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   product.ID
	productName string
	price       float64
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates the command. Only the order ID is checked here.
func NewAddItemCommand(
	orderID kernel.UUID,
	productID product.ID,
	productName string,
	price float64,
	quantity int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		productID:   productID,
		productName: productName,
		price:       price,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddItemCommand) ProductID() product.ID {
	return c.productID
}

func (c AddItemCommand) ProductName() string {
	return c.productName
}

func (c AddItemCommand) Price() float64 {
	return c.price
}

func (c AddItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
