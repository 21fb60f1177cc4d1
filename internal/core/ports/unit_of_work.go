package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary inside which an order is read and changed.
// Orders are not safe for concurrent mutation, so implementations must
// serialize units of work that touch the same order.
type UnitOfWork interface {
	// Begin starts the unit of work.
	Begin(ctx context.Context) error

	// Commit publishes every change made through OrderRepository.
	Commit(ctx context.Context) error

	// Rollback discards pending changes.
	// Returns error if the unit of work is not active, e.g. after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to this unit of work.
	OrderRepository() OrderRepository
}
