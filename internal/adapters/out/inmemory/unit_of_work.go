// Package inmemory keeps order aggregates in process memory behind the
// ports.UnitOfWork contract.
//
// Nothing is persisted: the Store lives as long as the process. A unit of work
// holds the store lock from Begin until Commit or Rollback, which gives every
// order the external serialization the aggregate itself does not provide.
// Repositories hand out clones and stage writes, so a rolled back unit of work
// leaves the store exactly as it was.
//
// Usage:
//
//	store := inmemory.NewStore()
//	factory := inmemory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err = o.AddItem(item); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package inmemory

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"golang.org/x/sync/semaphore"
)

// ErrNoActiveUnitOfWork is returned when repository, Commit or Rollback calls are
// made outside Begin ... Commit/Rollback.
var ErrNoActiveUnitOfWork = errors.New("unit of work is not active")

// Store holds committed orders. The zero value is not usable; use NewStore.
type Store struct {
	lock   *semaphore.Weighted
	orders map[kernel.UUID]*order.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		lock:   semaphore.NewWeighted(1),
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// UnitOfWorkFactory creates units of work sharing one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh, inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages order changes and publishes them on Commit.
// An instance is used by one goroutine at a time.
type UnitOfWork struct {
	store   *Store
	active  bool
	pending map[kernel.UUID]*order.Order
}

// Begin waits for the store lock. It returns ctx.Err() if ctx ends first.
// Calling Begin on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.lock.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("begin unit of work: %w", err)
	}

	uow.active = true
	uow.pending = make(map[kernel.UUID]*order.Order)
	return nil
}

// Commit publishes staged orders and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}

	for id, o := range uow.pending {
		uow.store.orders[id] = o
	}
	uow.finish()
	return nil
}

// Rollback discards staged orders and releases the store lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}

	uow.finish()
	return nil
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	uow.pending = nil
	uow.active = false
	uow.store.lock.Release(1)
}

// lookup returns the staged version of an order if there is one, else the committed one.
func (uow *UnitOfWork) lookup(id kernel.UUID) (*order.Order, bool) {
	if o, ok := uow.pending[id]; ok {
		return o, true
	}
	o, ok := uow.store.orders[id]
	return o, ok
}
