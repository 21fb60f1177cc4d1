package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler opens empty orders that use the configured price tolerance.
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	priceTolerance float64
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// priceTolerance is passed to order.WithPriceTolerance; 0 keeps exact price matching.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, priceTolerance float64) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		priceTolerance: priceTolerance,
	}
}

// Handle creates the order and stores it inside a unit of work.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), order.WithPriceTolerance(h.priceTolerance))
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
