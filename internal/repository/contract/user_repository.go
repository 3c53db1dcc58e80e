package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdateLastLogin(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}
