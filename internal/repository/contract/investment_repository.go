package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type InvestmentProductRepository interface {
	Create(ctx context.Context, product *entity.InvestmentProduct) error
	Update(ctx context.Context, product *entity.InvestmentProduct) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InvestmentProduct, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InvestmentProduct, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type InvestmentAccountRepository interface {
	Create(ctx context.Context, account *entity.InvestmentAccount) error
	Update(ctx context.Context, account *entity.InvestmentAccount) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InvestmentAccount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InvestmentAccount, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
