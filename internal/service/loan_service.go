package service

import (
	"context"
	"errors"
	"time"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"
)

type ILoanService interface {
	ListProducts(ctx context.Context) ([]dto.LoanProductResponse, error)
	Apply(ctx context.Context, userID uint, req *dto.LoanApplicationRequest) (*dto.LoanApplicationResponse, error)
	GetApplications(ctx context.Context, userID uint) ([]dto.LoanApplicationResponse, error)
}

type loanService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLoanService(uowFactory unitofwork.RepositoryFactory) ILoanService {
	return &loanService{uowFactory: uowFactory}
}

func (s *loanService) ListProducts(ctx context.Context) ([]dto.LoanProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.LoanProductRepository().FindAll(ctx, specification.AvailableOnly{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoanProductResponse, len(products))
	for i, p := range products {
		out[i] = toLoanProductResponse(p)
	}
	return out, nil
}

func (s *loanService) Apply(ctx context.Context, userID uint, req *dto.LoanApplicationRequest) (*dto.LoanApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.LoanProductRepository().FindOne(ctx,
		specification.ByProductCode{Code: req.ProductCode},
		specification.AvailableOnly{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("loan product not found")
	}

	if req.RequestedAmount < product.MinAmount || req.RequestedAmount > product.MaxAmount {
		return nil, errors.New("requested amount outside product range")
	}
	if req.RequestedTermMonths < product.MinTermMonths || req.RequestedTermMonths > product.MaxTermMonths {
		return nil, errors.New("requested term outside product range")
	}
	if product.MinIncome > 0 && req.MonthlyIncome < product.MinIncome {
		return nil, errors.New("monthly income below product minimum")
	}

	number, err := generateNumber("LA", 12)
	if err != nil {
		return nil, err
	}

	application := &entity.LoanApplication{
		UserId:              userID,
		ProductId:           product.Id,
		ApplicationNumber:   number,
		RequestedAmount:     req.RequestedAmount,
		RequestedTermMonths: req.RequestedTermMonths,
		Purpose:             req.Purpose,
		MonthlyIncome:       req.MonthlyIncome,
		EmploymentStatus:    req.EmploymentStatus,
		Status:              entity.LoanApplicationStatusSubmitted,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := uow.LoanApplicationRepository().Create(ctx, application); err != nil {
		return nil, err
	}

	res := toLoanApplicationResponse(application, product.ProductCode)
	return &res, nil
}

func (s *loanService) GetApplications(ctx context.Context, userID uint) ([]dto.LoanApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	apps, err := uow.LoanApplicationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoanApplicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toLoanApplicationResponse(a, "")
	}
	return out, nil
}

func toLoanProductResponse(p *entity.LoanProduct) dto.LoanProductResponse {
	return dto.LoanProductResponse{
		Id:            p.Id,
		Name:          p.Name,
		ProductCode:   p.ProductCode,
		LoanType:      p.LoanType,
		MinAmount:     p.MinAmount,
		MaxAmount:     p.MaxAmount,
		MinTermMonths: p.MinTermMonths,
		MaxTermMonths: p.MaxTermMonths,
		InterestRate:  p.InterestRate,
		ProcessingFee: p.ProcessingFee,
		Description:   p.Description,
		Requirements:  p.Requirements,
	}
}

func toLoanApplicationResponse(a *entity.LoanApplication, productCode string) dto.LoanApplicationResponse {
	return dto.LoanApplicationResponse{
		Id:                  a.Id,
		ApplicationNumber:   a.ApplicationNumber,
		ProductCode:         productCode,
		RequestedAmount:     a.RequestedAmount,
		RequestedTermMonths: a.RequestedTermMonths,
		Purpose:             a.Purpose,
		Status:              string(a.Status),
		ApprovedAmount:      a.ApprovedAmount,
		ApprovedRate:        a.ApprovedRate,
		CreatedAt:           a.CreatedAt,
	}
}
