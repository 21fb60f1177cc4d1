// Package queries contains read-only operations over orders.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves the lines of one order in insertion order.
//
// Example:
//
//	query, err := NewGetOrderItemsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	lines, err := handler.Handle(ctx, query)
//	for _, line := range lines {
//	    fmt.Printf("%s x%d @ %.2f\n", line.ProductName, line.Quantity, line.Price)
//	}
type GetOrderItemsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates the query for a valid order ID.
func NewGetOrderItemsQuery(orderID kernel.UUID) (GetOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

func (q GetOrderItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemsQueryResponse is one order line.
type GetOrderItemsQueryResponse struct {
	ProductID   product.ID
	ProductName string
	Price       float64
	Quantity    int
}
