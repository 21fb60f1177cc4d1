package order

import (
	"errors"
	"math"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMergedQuantityOverflows is the cause of the error returned when merging
	// would push a held quantity past math.MaxInt.
	ErrMergedQuantityOverflows = errors.New("merged quantity overflows int")
)

// Option configures an Order at construction time.
type Option func(o *Order) error

// WithPriceTolerance makes prices within tolerance of each other count as the
// same merge key. The default of 0 keeps exact equality. Negative, NaN and
// infinite tolerances are rejected.
func WithPriceTolerance(tolerance float64) Option {
	return func(o *Order) error {
		return o.setPriceTolerance(tolerance)
	}
}

// Order is the aggregate root holding the line items being assembled.
//
// Order follows these invariants:
//   - Every held item has price >= 0 and quantity > 0
//   - No two held items share the same (product ID, price) merge key
//   - Items keep their insertion order and are never removed
//   - Can only be created through NewOrder constructor
type Order struct {
	id kernel.UUID

	// items in insertion order; index holds the same pointers keyed by merge key
	items []*Item
	index lineIndex

	priceTolerance float64

	isConstructed bool
}

// NewOrder creates an empty order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID())
//	if err != nil {
//	    // Handle validation error
//	}
//	item, _ := order.NewItem(product.NewProduct(1, "pen"), 10, 2)
//	err = o.AddItem(item)
func NewOrder(id kernel.UUID, opts ...Option) (*Order, error) {
	o := &Order{
		items:         make([]*Item, 0),
		index:         newLineIndex(),
		isConstructed: true,
	}

	validations := []error{o.setID(id)}
	for _, opt := range opts {
		validations = append(validations, opt(o))
	}
	if err := errors.Join(validations...); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PriceTolerance returns the tolerance used when comparing prices.
func (o *Order) PriceTolerance() float64 {
	return o.priceTolerance
}

// Items returns the held items in insertion order. The returned slice is a copy;
// appending to or reordering it does not affect the order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Len returns the number of distinct lines.
func (o *Order) Len() int {
	return len(o.items)
}

// AddItem validates the candidate and then either merges it into the item with
// the same (product ID, price) key or appends it.
//
// Validation runs in this order and the first failure wins:
//   - the item must be non-nil and created via NewItem (errs.ValueIsRequiredError)
//   - price >= 0 (IncorrectItemError with ErrPriceIsNegative)
//   - quantity > 0 (IncorrectItemError with ErrQuantityIsNotPositive)
//
// A merge whose sum would overflow int is rejected with errs.ValueIsOutOfRangeError.
//
// On failure the order is left unchanged. On a merge the stored item's quantity
// grows by the candidate's quantity and the candidate is discarded. On an append
// the order takes ownership of the candidate; callers must not modify it afterwards.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}

	// NaN fails this comparison as well
	if !(item.price >= 0) {
		return newIncorrectItemError(ErrPriceIsNegative, item.price)
	}

	if item.quantity <= 0 {
		return newIncorrectItemError(ErrQuantityIsNotPositive, item.quantity)
	}

	if existing, ok := o.index.find(item.product.ID(), item.price, o.priceTolerance); ok {
		if headroom := math.MaxInt - existing.quantity; item.quantity > headroom {
			return errs.NewValueIsOutOfRangeErrorWithCause("quantity", item.quantity, 1, headroom, ErrMergedQuantityOverflows)
		}
		existing.SetQuantity(existing.quantity + item.quantity)
		return nil
	}

	o.index.insert(item, len(o.items))
	o.items = append(o.items, item)
	return nil
}

// Clone returns a deep copy of the order. Items are copied; products are shared.
func (o *Order) Clone() *Order {
	c := &Order{
		id:             o.id,
		items:          make([]*Item, 0, len(o.items)),
		index:          newLineIndex(),
		priceTolerance: o.priceTolerance,
		isConstructed:  o.isConstructed,
	}
	for seq, item := range o.items {
		copied := item.clone()
		c.index.insert(copied, seq)
		c.items = append(c.items, copied)
	}
	return c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPriceTolerance(tolerance float64) error {
	if math.IsNaN(tolerance) {
		return errs.NewValueIsInvalidError("price tolerance")
	}
	if math.IsInf(tolerance, 0) || tolerance < 0 {
		return errs.NewValueIsOutOfRangeError("price tolerance", tolerance, 0, math.MaxFloat64)
	}
	o.priceTolerance = tolerance
	return nil
}
