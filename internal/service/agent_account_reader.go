package service

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/pkg/agent"
)

// accountReader adapts the account repository to the read-only view the
// responders need for balance lookups.
type accountReader struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAgentAccountReader(uowFactory unitofwork.RepositoryFactory) agent.AccountReader {
	return &accountReader{uowFactory: uowFactory}
}

func (r *accountReader) FindByNumber(ctx context.Context, number string) (*agent.Account, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx, specification.ByAccountNumber{Number: number})
	if err != nil {
		return nil, err
	}
	return toAgentAccount(account), nil
}

func (r *accountReader) FindByUser(ctx context.Context, userID uint) (*agent.Account, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toAgentAccount(account), nil
}

func (r *accountReader) FindDefault(ctx context.Context) (*agent.Account, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx,
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toAgentAccount(account), nil
}

func toAgentAccount(a *entity.Account) *agent.Account {
	if a == nil {
		return nil
	}
	return &agent.Account{
		ID:       a.Id,
		Number:   a.AccountNumber,
		Balance:  a.Balance,
		Currency: a.Currency,
	}
}
