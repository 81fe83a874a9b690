package repository

import "context"

// RepositoryFactory hands out repositories bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	TodoRepo() TodoRepository
}

// TransactionManager executes a unit of work atomically. The callback
// receives repositories bound to one transaction; returning an error rolls
// everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
