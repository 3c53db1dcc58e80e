package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type LoanProductRepository interface {
	Create(ctx context.Context, product *entity.LoanProduct) error
	Update(ctx context.Context, product *entity.LoanProduct) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LoanProduct, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoanProduct, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type LoanApplicationRepository interface {
	Create(ctx context.Context, application *entity.LoanApplication) error
	Update(ctx context.Context, application *entity.LoanApplication) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LoanApplication, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoanApplication, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdateStatus(ctx context.Context, id uint, status string) error
}
