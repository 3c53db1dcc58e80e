package contract

import (
	"context"

	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/repository/specification"
)

type EscalationAlertRepository interface {
	Create(ctx context.Context, alert *model.EscalationAlert) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.EscalationAlert, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	MarkNotified(ctx context.Context, id uint) error
}
