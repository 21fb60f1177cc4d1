package order

import (
	"errors"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for items that were not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line entry: one product at one unit price, with a quantity.
//
// Price and quantity are not checked here; Order.AddItem validates them so that
// the rejection is reported as an IncorrectItemError.
type Item struct {
	// product is shared with other items and never modified
	product *product.Product

	price    float64
	quantity int

	isConstructed bool
}

// NewItem creates an item for a constructed product.
func NewItem(p *product.Product, price float64, quantity int) (*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("product", err)
	}

	return &Item{
		product:       p,
		price:         price,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Product returns the product the line is for.
func (i *Item) Product() *product.Product {
	return i.product
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

// Quantity returns the number of units on the line.
func (i *Item) Quantity() int {
	return i.quantity
}

// SetQuantity replaces the quantity. Order uses it when merging lines.
func (i *Item) SetQuantity(quantity int) {
	i.quantity = quantity
}

func (i *Item) clone() *Item {
	c := *i
	return &c
}
