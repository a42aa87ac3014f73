package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per transition.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one order transition: the row lock taken by
// GetForUpdate, the status write and the commit all share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback after Commit returns an error that a deferred call may discard.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction opened by Begin; outside
	// of one it runs against the plain connection.
	OrderRepository() OrderRepository
}
