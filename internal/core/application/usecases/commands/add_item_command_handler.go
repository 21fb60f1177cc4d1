package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/rs/zerolog"
)

// AddItemCommandHandler loads an order, adds one item to it and stores the result.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory, logger)
//	cmd, _ := NewAddItemCommand(orderID, 7, "stapler", 12.5, 1)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var incorrect *order.IncorrectItemError
//	    if errors.As(err, &incorrect) {
//	        // invalid price or quantity, order unchanged
//	    }
//	    return err
//	}
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     zerolog.Logger
}

// NewAddItemCommandHandler creates a handler for adding items.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory, logger zerolog.Logger) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("component", "add_item_handler").Logger(),
	}
}

// Handle adds the item inside a unit of work. Validation errors from the order
// are returned unchanged and nothing is stored.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := order.NewItem(product.NewProduct(cmd.ProductID(), cmd.ProductName()), cmd.Price(), cmd.Quantity())
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	linesBefore := o.Len()
	if err = o.AddItem(item); err != nil {
		if errors.Is(err, order.ErrIncorrectItem) {
			h.logger.Warn().
				Err(err).
				Stringer("order_id", cmd.OrderID()).
				Stringer("product_id", cmd.ProductID()).
				Msg("item rejected")
		}
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Debug().
		Stringer("order_id", cmd.OrderID()).
		Stringer("product_id", cmd.ProductID()).
		Float64("price", cmd.Price()).
		Int("quantity", cmd.Quantity()).
		Bool("merged", o.Len() == linesBefore).
		Msg("item added")
	return nil
}
