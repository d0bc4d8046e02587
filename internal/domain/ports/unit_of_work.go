package ports

import "context"

// UnitOfWork runs several repository calls in one store transaction.
// Repositories pick the transaction up from the context returned by Begin
// or passed to the WithTransaction callback.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
