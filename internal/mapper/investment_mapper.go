package mapper

import (
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"
)

type InvestmentMapper struct{}

func NewInvestmentMapper() *InvestmentMapper {
	return &InvestmentMapper{}
}

func (m *InvestmentMapper) ProductToEntity(p *model.InvestmentProduct) *entity.InvestmentProduct {
	if p == nil {
		return nil
	}
	return &entity.InvestmentProduct{
		Id:             p.Id,
		Name:           p.Name,
		ProductCode:    p.ProductCode,
		InvestmentType: entity.InvestmentType(p.InvestmentType),
		RiskLevel:      entity.InvestmentRisk(p.RiskLevel),
		ExpectedReturn: p.ExpectedReturn,
		MinInvestment:  p.MinInvestment,
		Currency:       p.Currency,
		IsAvailable:    p.IsAvailable,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *InvestmentMapper) ProductToModel(p *entity.InvestmentProduct) *model.InvestmentProduct {
	if p == nil {
		return nil
	}
	return &model.InvestmentProduct{
		Id:             p.Id,
		Name:           p.Name,
		ProductCode:    p.ProductCode,
		InvestmentType: string(p.InvestmentType),
		RiskLevel:      string(p.RiskLevel),
		ExpectedReturn: p.ExpectedReturn,
		MinInvestment:  p.MinInvestment,
		Currency:       p.Currency,
		IsAvailable:    p.IsAvailable,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *InvestmentMapper) ProductsToEntities(products []*model.InvestmentProduct) []*entity.InvestmentProduct {
	entities := make([]*entity.InvestmentProduct, len(products))
	for i, p := range products {
		entities[i] = m.ProductToEntity(p)
	}
	return entities
}

func (m *InvestmentMapper) AccountToEntity(a *model.InvestmentAccount) *entity.InvestmentAccount {
	if a == nil {
		return nil
	}
	return &entity.InvestmentAccount{
		Id:               a.Id,
		UserId:           a.UserId,
		ProductId:        a.ProductId,
		AccountNumber:    a.AccountNumber,
		InvestmentAmount: a.InvestmentAmount,
		CurrentValue:     a.CurrentValue,
		TotalReturn:      a.TotalReturn,
		ReturnRate:       a.ReturnRate,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *InvestmentMapper) AccountToModel(a *entity.InvestmentAccount) *model.InvestmentAccount {
	if a == nil {
		return nil
	}
	return &model.InvestmentAccount{
		Id:               a.Id,
		UserId:           a.UserId,
		ProductId:        a.ProductId,
		AccountNumber:    a.AccountNumber,
		InvestmentAmount: a.InvestmentAmount,
		CurrentValue:     a.CurrentValue,
		TotalReturn:      a.TotalReturn,
		ReturnRate:       a.ReturnRate,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *InvestmentMapper) AccountsToEntities(accounts []*model.InvestmentAccount) []*entity.InvestmentAccount {
	entities := make([]*entity.InvestmentAccount, len(accounts))
	for i, a := range accounts {
		entities[i] = m.AccountToEntity(a)
	}
	return entities
}
