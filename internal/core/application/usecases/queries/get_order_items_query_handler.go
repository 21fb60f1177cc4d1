package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetOrderItemsQueryHandler reads order lines through a unit of work that is
// always rolled back.
type GetOrderItemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderItemsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order lines in insertion order. An empty order yields an
// empty, non-nil slice.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	items := o.Items()
	lines := make([]GetOrderItemsQueryResponse, 0, len(items))
	for _, item := range items {
		lines = append(lines, GetOrderItemsQueryResponse{
			ProductID:   item.Product().ID(),
			ProductName: item.Product().Name(),
			Price:       item.Price(),
			Quantity:    item.Quantity(),
		})
	}

	return lines, nil
}
