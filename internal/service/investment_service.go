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

type IInvestmentService interface {
	ListProducts(ctx context.Context) ([]dto.InvestmentProductResponse, error)
	Purchase(ctx context.Context, userID uint, req *dto.PurchaseInvestmentRequest) (*dto.InvestmentAccountResponse, error)
	GetHoldings(ctx context.Context, userID uint) ([]dto.InvestmentAccountResponse, error)
}

type investmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInvestmentService(uowFactory unitofwork.RepositoryFactory) IInvestmentService {
	return &investmentService{uowFactory: uowFactory}
}

func (s *investmentService) ListProducts(ctx context.Context) ([]dto.InvestmentProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.InvestmentProductRepository().FindAll(ctx, specification.AvailableOnly{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvestmentProductResponse, len(products))
	for i, p := range products {
		out[i] = toInvestmentProductResponse(p)
	}
	return out, nil
}

func (s *investmentService) Purchase(ctx context.Context, userID uint, req *dto.PurchaseInvestmentRequest) (*dto.InvestmentAccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.InvestmentProductRepository().FindOne(ctx,
		specification.ByProductCode{Code: req.ProductCode},
		specification.AvailableOnly{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("investment product not found")
	}
	if req.Amount < product.MinInvestment {
		return nil, errors.New("amount below product minimum investment")
	}

	number, err := generateNumber("IA", 12)
	if err != nil {
		return nil, err
	}

	account := &entity.InvestmentAccount{
		UserId:           userID,
		ProductId:        product.Id,
		AccountNumber:    number,
		InvestmentAmount: req.Amount,
		CurrentValue:     req.Amount,
		TotalReturn:      0,
		ReturnRate:       0,
		Status:           "active",
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.InvestmentAccountRepository().Create(ctx, account); err != nil {
		return nil, err
	}

	res := toInvestmentAccountResponse(account, product)
	return &res, nil
}

func (s *investmentService) GetHoldings(ctx context.Context, userID uint) ([]dto.InvestmentAccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	holdings, err := uow.InvestmentAccountRepository().FindAll(ctx, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}

	out := make([]dto.InvestmentAccountResponse, 0, len(holdings))
	for _, h := range holdings {
		product, err := uow.InvestmentProductRepository().FindOne(ctx, specification.ByID{ID: h.ProductId})
		if err != nil {
			return nil, err
		}
		out = append(out, toInvestmentAccountResponse(h, product))
	}
	return out, nil
}

func toInvestmentProductResponse(p *entity.InvestmentProduct) dto.InvestmentProductResponse {
	return dto.InvestmentProductResponse{
		Id:             p.Id,
		Name:           p.Name,
		ProductCode:    p.ProductCode,
		InvestmentType: string(p.InvestmentType),
		RiskLevel:      string(p.RiskLevel),
		ExpectedReturn: p.ExpectedReturn,
		MinInvestment:  p.MinInvestment,
		Currency:       p.Currency,
		Description:    p.Description,
	}
}

func toInvestmentAccountResponse(a *entity.InvestmentAccount, product *entity.InvestmentProduct) dto.InvestmentAccountResponse {
	res := dto.InvestmentAccountResponse{
		Id:               a.Id,
		AccountNumber:    a.AccountNumber,
		InvestmentAmount: a.InvestmentAmount,
		CurrentValue:     a.CurrentValue,
		TotalReturn:      a.TotalReturn,
		ReturnRate:       a.ReturnRate,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
	}
	if product != nil {
		res.ProductCode = product.ProductCode
		res.ProductName = product.Name
	}
	return res
}
