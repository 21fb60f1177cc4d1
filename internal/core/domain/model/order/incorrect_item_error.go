package order

import (
	"errors"
	"fmt"
)

var (
	// ErrIncorrectItem matches every IncorrectItemError regardless of its reason.
	ErrIncorrectItem = errors.New("incorrect item")

	ErrPriceIsNegative       = errors.New("price must be greater than or equal to zero")
	ErrQuantityIsNotPositive = errors.New("quantity must be greater than zero")
)

// IncorrectItemError is returned by Order.AddItem when the candidate item fails
// validation. Reason is ErrPriceIsNegative or ErrQuantityIsNotPositive and Value
// is the rejected price or quantity.
type IncorrectItemError struct {
	Reason error
	Value  any
}

func newIncorrectItemError(reason error, value any) *IncorrectItemError {
	return &IncorrectItemError{
		Reason: reason,
		Value:  value,
	}
}

func (e *IncorrectItemError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", ErrIncorrectItem, e.Reason, e.Value)
}

func (e *IncorrectItemError) Unwrap() []error {
	return []error{ErrIncorrectItem, e.Reason}
}
