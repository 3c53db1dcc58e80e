package mapper

import (
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"
)

type LoanMapper struct{}

func NewLoanMapper() *LoanMapper {
	return &LoanMapper{}
}

func (m *LoanMapper) ProductToEntity(p *model.LoanProduct) *entity.LoanProduct {
	if p == nil {
		return nil
	}
	return &entity.LoanProduct{
		Id:             p.Id,
		Name:           p.Name,
		ProductCode:    p.ProductCode,
		LoanType:       p.LoanType,
		MinAmount:      p.MinAmount,
		MaxAmount:      p.MaxAmount,
		MinTermMonths:  p.MinTermMonths,
		MaxTermMonths:  p.MaxTermMonths,
		InterestRate:   p.InterestRate,
		ProcessingFee:  p.ProcessingFee,
		MinIncome:      p.MinIncome,
		MinCreditScore: p.MinCreditScore,
		IsAvailable:    p.IsAvailable,
		Description:    p.Description,
		Requirements:   p.Requirements,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *LoanMapper) ProductToModel(p *entity.LoanProduct) *model.LoanProduct {
	if p == nil {
		return nil
	}
	return &model.LoanProduct{
		Id:             p.Id,
		Name:           p.Name,
		ProductCode:    p.ProductCode,
		LoanType:       p.LoanType,
		MinAmount:      p.MinAmount,
		MaxAmount:      p.MaxAmount,
		MinTermMonths:  p.MinTermMonths,
		MaxTermMonths:  p.MaxTermMonths,
		InterestRate:   p.InterestRate,
		ProcessingFee:  p.ProcessingFee,
		MinIncome:      p.MinIncome,
		MinCreditScore: p.MinCreditScore,
		IsAvailable:    p.IsAvailable,
		Description:    p.Description,
		Requirements:   p.Requirements,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *LoanMapper) ProductsToEntities(products []*model.LoanProduct) []*entity.LoanProduct {
	entities := make([]*entity.LoanProduct, len(products))
	for i, p := range products {
		entities[i] = m.ProductToEntity(p)
	}
	return entities
}

func (m *LoanMapper) ApplicationToEntity(a *model.LoanApplication) *entity.LoanApplication {
	if a == nil {
		return nil
	}
	return &entity.LoanApplication{
		Id:                  a.Id,
		UserId:              a.UserId,
		ProductId:           a.ProductId,
		ApplicationNumber:   a.ApplicationNumber,
		RequestedAmount:     a.RequestedAmount,
		RequestedTermMonths: a.RequestedTermMonths,
		Purpose:             a.Purpose,
		MonthlyIncome:       a.MonthlyIncome,
		EmploymentStatus:    a.EmploymentStatus,
		Status:              entity.LoanApplicationStatus(a.Status),
		ApprovedAmount:      a.ApprovedAmount,
		ApprovedTermMonths:  a.ApprovedTermMonths,
		ApprovedRate:        a.ApprovedRate,
		ReviewedAt:          a.ReviewedAt,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func (m *LoanMapper) ApplicationToModel(a *entity.LoanApplication) *model.LoanApplication {
	if a == nil {
		return nil
	}
	return &model.LoanApplication{
		Id:                  a.Id,
		UserId:              a.UserId,
		ProductId:           a.ProductId,
		ApplicationNumber:   a.ApplicationNumber,
		RequestedAmount:     a.RequestedAmount,
		RequestedTermMonths: a.RequestedTermMonths,
		Purpose:             a.Purpose,
		MonthlyIncome:       a.MonthlyIncome,
		EmploymentStatus:    a.EmploymentStatus,
		Status:              string(a.Status),
		ApprovedAmount:      a.ApprovedAmount,
		ApprovedTermMonths:  a.ApprovedTermMonths,
		ApprovedRate:        a.ApprovedRate,
		ReviewedAt:          a.ReviewedAt,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func (m *LoanMapper) ApplicationsToEntities(apps []*model.LoanApplication) []*entity.LoanApplication {
	entities := make([]*entity.LoanApplication, len(apps))
	for i, a := range apps {
		entities[i] = m.ApplicationToEntity(a)
	}
	return entities
}
