package inmemory

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned by Add for an identifier that is already stored.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository implements ports.OrderRepository on top of a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a copy of a new order.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.uow.lookup(aggregate.ID()); ok {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, aggregate.ID())
	}

	r.uow.pending[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Update stages a copy of an existing order.
func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.uow.lookup(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.uow.pending[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Get returns a copy of the order; changes reach the store only through Update.
func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.uow.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return o.Clone(), nil
}

func (r *OrderRepository) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveUnitOfWork
	}
	return nil
}
