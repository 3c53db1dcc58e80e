package unitofwork

import "context"

// RepositoryFactory mints a fresh UnitOfWork per request so services
// never share transactional state.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
