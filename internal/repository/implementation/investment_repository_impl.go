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

type InvestmentProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvestmentMapper
}

func NewInvestmentProductRepository(db *gorm.DB) contract.InvestmentProductRepository {
	return &InvestmentProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvestmentMapper(),
	}
}

func (r *InvestmentProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvestmentProductRepositoryImpl) Create(ctx context.Context, product *entity.InvestmentProduct) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *InvestmentProductRepositoryImpl) Update(ctx context.Context, product *entity.InvestmentProduct) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *InvestmentProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InvestmentProduct, error) {
	var m model.InvestmentProduct
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProductToEntity(&m), nil
}

func (r *InvestmentProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InvestmentProduct, error) {
	var models []*model.InvestmentProduct
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProductsToEntities(models), nil
}

func (r *InvestmentProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InvestmentProduct{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type InvestmentAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvestmentMapper
}

func NewInvestmentAccountRepository(db *gorm.DB) contract.InvestmentAccountRepository {
	return &InvestmentAccountRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvestmentMapper(),
	}
}

func (r *InvestmentAccountRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvestmentAccountRepositoryImpl) Create(ctx context.Context, account *entity.InvestmentAccount) error {
	m := r.mapper.AccountToModel(account)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.AccountToEntity(m)
	return nil
}

func (r *InvestmentAccountRepositoryImpl) Update(ctx context.Context, account *entity.InvestmentAccount) error {
	m := r.mapper.AccountToModel(account)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.AccountToEntity(m)
	return nil
}

func (r *InvestmentAccountRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InvestmentAccount, error) {
	var m model.InvestmentAccount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AccountToEntity(&m), nil
}

func (r *InvestmentAccountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InvestmentAccount, error) {
	var models []*model.InvestmentAccount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.AccountsToEntities(models), nil
}

func (r *InvestmentAccountRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InvestmentAccount{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
