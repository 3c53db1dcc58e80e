package unitofwork

import (
	"context"

	"ai-bankassist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AccountRepository() contract.AccountRepository
	TransactionRepository() contract.TransactionRepository
	LoanProductRepository() contract.LoanProductRepository
	LoanApplicationRepository() contract.LoanApplicationRepository
	InvestmentProductRepository() contract.InvestmentProductRepository
	InvestmentAccountRepository() contract.InvestmentAccountRepository
	KnowledgeDocumentRepository() contract.KnowledgeDocumentRepository
	EscalationAlertRepository() contract.EscalationAlertRepository
}
