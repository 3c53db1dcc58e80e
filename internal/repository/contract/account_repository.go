package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Account, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Account, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdateBalances(ctx context.Context, id uint, balance, available float64) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, tx *entity.Transaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindRecentByAccount returns the latest transactions for an account, newest first.
	FindRecentByAccount(ctx context.Context, accountId uint, limit int) ([]*entity.Transaction, error)
}
