package implementation

import (
	"context"
	"time"

	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/repository/contract"
	"ai-bankassist-be/internal/repository/specification"

	"gorm.io/gorm"
)

// Escalation alerts are append-mostly audit rows, so no entity/mapper
// indirection here. The gorm model is the record.
type EscalationAlertRepositoryImpl struct {
	db *gorm.DB
}

func NewEscalationAlertRepository(db *gorm.DB) contract.EscalationAlertRepository {
	return &EscalationAlertRepositoryImpl{db: db}
}

func (r *EscalationAlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EscalationAlertRepositoryImpl) Create(ctx context.Context, alert *model.EscalationAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *EscalationAlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.EscalationAlert, error) {
	var alerts []*model.EscalationAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *EscalationAlertRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EscalationAlert{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EscalationAlertRepositoryImpl) MarkNotified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.EscalationAlert{}).
		Where("id = ?", id).
		Update("notified_at", time.Now()).Error
}
