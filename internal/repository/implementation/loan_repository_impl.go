package implementation

import (
	"context"
	"errors"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/mapper"
	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/repository/contract"
	"ai-bankassist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LoanProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoanMapper
}

func NewLoanProductRepository(db *gorm.DB) contract.LoanProductRepository {
	return &LoanProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoanMapper(),
	}
}

func (r *LoanProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LoanProductRepositoryImpl) Create(ctx context.Context, product *entity.LoanProduct) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *LoanProductRepositoryImpl) Update(ctx context.Context, product *entity.LoanProduct) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *LoanProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LoanProduct, error) {
	var m model.LoanProduct
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProductToEntity(&m), nil
}

func (r *LoanProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoanProduct, error) {
	var models []*model.LoanProduct
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProductsToEntities(models), nil
}

func (r *LoanProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LoanProduct{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type LoanApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoanMapper
}

func NewLoanApplicationRepository(db *gorm.DB) contract.LoanApplicationRepository {
	return &LoanApplicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoanMapper(),
	}
}

func (r *LoanApplicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LoanApplicationRepositoryImpl) Create(ctx context.Context, application *entity.LoanApplication) error {
	m := r.mapper.ApplicationToModel(application)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*application = *r.mapper.ApplicationToEntity(m)
	return nil
}

func (r *LoanApplicationRepositoryImpl) Update(ctx context.Context, application *entity.LoanApplication) error {
	m := r.mapper.ApplicationToModel(application)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*application = *r.mapper.ApplicationToEntity(m)
	return nil
}

func (r *LoanApplicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LoanApplication, error) {
	var m model.LoanApplication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ApplicationToEntity(&m), nil
}

func (r *LoanApplicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoanApplication, error) {
	var models []*model.LoanApplication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ApplicationsToEntities(models), nil
}

func (r *LoanApplicationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LoanApplication{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LoanApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.LoanApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}
