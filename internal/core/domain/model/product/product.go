package product

import (
	"errors"
	"strconv"
)

// ErrProductIsNotConstructed is returned by Validate for products that were not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ID is the stable identity key of a product.
type ID int64

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Product is a catalog entity referenced (not owned) by order items.
type Product struct {
	id   ID
	name string

	isConstructed bool
}

// NewProduct creates a product. Any integer is a valid ID; the name may be empty.
func NewProduct(id ID, name string) *Product {
	return &Product{
		id:            id,
		name:          name,
		isConstructed: true,
	}
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identity.
func (p *Product) ID() ID {
	return p.id
}

// Name returns the descriptive name.
func (p *Product) Name() string {
	return p.name
}

// IsEqual compares products by ID only.
func (p *Product) IsEqual(other *Product) bool {
	return p != nil && other != nil && p.id == other.id
}
