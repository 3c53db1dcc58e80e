package mapper

import (
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"
)

type AccountMapper struct{}

func NewAccountMapper() *AccountMapper {
	return &AccountMapper{}
}

func (m *AccountMapper) ToEntity(a *model.Account) *entity.Account {
	if a == nil {
		return nil
	}
	return &entity.Account{
		Id:               a.Id,
		UserId:           a.UserId,
		AccountNumber:    a.AccountNumber,
		AccountType:      entity.AccountType(a.AccountType),
		Currency:         a.Currency,
		Balance:          a.Balance,
		AvailableBalance: a.AvailableBalance,
		Status:           entity.AccountStatus(a.Status),
		DailyLimit:       a.DailyLimit,
		MonthlyLimit:     a.MonthlyLimit,
		Description:      a.Description,
		OpenedDate:       a.OpenedDate,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *AccountMapper) ToModel(a *entity.Account) *model.Account {
	if a == nil {
		return nil
	}
	return &model.Account{
		Id:               a.Id,
		UserId:           a.UserId,
		AccountNumber:    a.AccountNumber,
		AccountType:      string(a.AccountType),
		Currency:         a.Currency,
		Balance:          a.Balance,
		AvailableBalance: a.AvailableBalance,
		Status:           string(a.Status),
		DailyLimit:       a.DailyLimit,
		MonthlyLimit:     a.MonthlyLimit,
		Description:      a.Description,
		OpenedDate:       a.OpenedDate,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *AccountMapper) ToEntities(accounts []*model.Account) []*entity.Account {
	entities := make([]*entity.Account, len(accounts))
	for i, a := range accounts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AccountMapper) TransactionToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:                  t.Id,
		AccountId:           t.AccountId,
		TransactionNumber:   t.TransactionNumber,
		TransactionType:     entity.TransactionType(t.TransactionType),
		Amount:              t.Amount,
		Currency:            t.Currency,
		BalanceBefore:       t.BalanceBefore,
		BalanceAfter:        t.BalanceAfter,
		Status:              entity.TransactionStatus(t.Status),
		Description:         t.Description,
		CounterpartyAccount: t.CounterpartyAccount,
		ProcessedAt:         t.ProcessedAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func (m *AccountMapper) TransactionToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:                  t.Id,
		AccountId:           t.AccountId,
		TransactionNumber:   t.TransactionNumber,
		TransactionType:     string(t.TransactionType),
		Amount:              t.Amount,
		Currency:            t.Currency,
		BalanceBefore:       t.BalanceBefore,
		BalanceAfter:        t.BalanceAfter,
		Status:              string(t.Status),
		Description:         t.Description,
		CounterpartyAccount: t.CounterpartyAccount,
		ProcessedAt:         t.ProcessedAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func (m *AccountMapper) TransactionsToEntities(txs []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(txs))
	for i, t := range txs {
		entities[i] = m.TransactionToEntity(t)
	}
	return entities
}
