package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"

	"ai-bankassist-be/pkg/events"
	pktNats "ai-bankassist-be/pkg/nats"
)

type IAccountService interface {
	CreateAccount(ctx context.Context, userID uint, req *dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccounts(ctx context.Context, userID uint) ([]dto.AccountResponse, error)
	GetAccount(ctx context.Context, userID uint, accountNumber string) (*dto.AccountResponse, error)
	Deposit(ctx context.Context, userID uint, accountNumber string, req *dto.DepositRequest) (*dto.TransactionResponse, error)
	Withdraw(ctx context.Context, userID uint, accountNumber string, req *dto.WithdrawRequest) (*dto.TransactionResponse, error)
	Transfer(ctx context.Context, userID uint, accountNumber string, req *dto.TransferRequest) (*dto.TransactionResponse, error)
	GetTransactions(ctx context.Context, userID uint, accountNumber string, limit int) ([]dto.TransactionResponse, error)
}

type accountService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAccountService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAccountService {
	return &accountService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// generateNumber builds a numeric identifier with the given prefix and
// random digit count.
func generateNumber(prefix string, digits int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, digits, n), nil
}

func (s *accountService) CreateAccount(ctx context.Context, userID uint, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	number, err := generateNumber("6226", 12)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "CNY"
	}

	account := &entity.Account{
		UserId:           userID,
		AccountNumber:    number,
		AccountType:      entity.AccountType(req.AccountType),
		Currency:         currency,
		Balance:          0,
		AvailableBalance: 0,
		Status:           entity.AccountStatusActive,
		DailyLimit:       50000,
		MonthlyLimit:     1000000,
		Description:      req.Description,
		OpenedDate:       time.Now(),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.AccountRepository().Create(ctx, account); err != nil {
		return nil, err
	}

	res := toAccountResponse(account)
	return &res, nil
}

func (s *accountService) GetAccounts(ctx context.Context, userID uint) ([]dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	accounts, err := uow.AccountRepository().FindAll(ctx, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	return out, nil
}

func (s *accountService) GetAccount(ctx context.Context, userID uint, accountNumber string) (*dto.AccountResponse, error) {
	account, err := s.ownedAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	res := toAccountResponse(account)
	return &res, nil
}

// ownedAccount resolves an account by number and enforces ownership.
func (s *accountService) ownedAccount(ctx context.Context, userID uint, accountNumber string) (*entity.Account, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx, specification.ByAccountNumber{Number: accountNumber})
	if err != nil {
		return nil, err
	}
	if account == nil || account.UserId != userID {
		return nil, errors.New("account not found")
	}
	return account, nil
}

func (s *accountService) Deposit(ctx context.Context, userID uint, accountNumber string, req *dto.DepositRequest) (*dto.TransactionResponse, error) {
	account, err := s.ownedAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	return s.applyTransaction(ctx, account, entity.TransactionTypeDeposit, req.Amount, req.Description, "")
}

func (s *accountService) Withdraw(ctx context.Context, userID uint, accountNumber string, req *dto.WithdrawRequest) (*dto.TransactionResponse, error) {
	account, err := s.ownedAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	if account.AvailableBalance < req.Amount {
		return nil, errors.New("insufficient available balance")
	}
	if req.Amount > account.DailyLimit {
		return nil, errors.New("amount exceeds daily limit")
	}
	return s.applyTransaction(ctx, account, entity.TransactionTypeWithdrawal, req.Amount, req.Description, "")
}

func (s *accountService) Transfer(ctx context.Context, userID uint, accountNumber string, req *dto.TransferRequest) (*dto.TransactionResponse, error) {
	if req.ToAccountNumber == accountNumber {
		return nil, errors.New("cannot transfer to the same account")
	}

	source, err := s.ownedAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	if source.AvailableBalance < req.Amount {
		return nil, errors.New("insufficient available balance")
	}
	if req.Amount > source.DailyLimit {
		return nil, errors.New("amount exceeds daily limit")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	target, err := uow.AccountRepository().FindOne(ctx, specification.ByAccountNumber{Number: req.ToAccountNumber})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("target account not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()

	outNumber, err := generateNumber("TXN", 16)
	if err != nil {
		return nil, err
	}
	outTx := &entity.Transaction{
		AccountId:           source.Id,
		TransactionNumber:   outNumber,
		TransactionType:     entity.TransactionTypeTransferOut,
		Amount:              req.Amount,
		Currency:            source.Currency,
		BalanceBefore:       source.Balance,
		BalanceAfter:        source.Balance - req.Amount,
		Status:              entity.TransactionStatusCompleted,
		Description:         req.Description,
		CounterpartyAccount: target.AccountNumber,
		ProcessedAt:         &now,
		CreatedAt:           now,
	}
	if err := uow.TransactionRepository().Create(ctx, outTx); err != nil {
		return nil, err
	}

	inNumber, err := generateNumber("TXN", 16)
	if err != nil {
		return nil, err
	}
	inTx := &entity.Transaction{
		AccountId:           target.Id,
		TransactionNumber:   inNumber,
		TransactionType:     entity.TransactionTypeTransferIn,
		Amount:              req.Amount,
		Currency:            target.Currency,
		BalanceBefore:       target.Balance,
		BalanceAfter:        target.Balance + req.Amount,
		Status:              entity.TransactionStatusCompleted,
		Description:         req.Description,
		CounterpartyAccount: source.AccountNumber,
		ProcessedAt:         &now,
		CreatedAt:           now,
	}
	if err := uow.TransactionRepository().Create(ctx, inTx); err != nil {
		return nil, err
	}

	if err := uow.AccountRepository().UpdateBalances(ctx, source.Id, outTx.BalanceAfter, source.AvailableBalance-req.Amount); err != nil {
		return nil, err
	}
	if err := uow.AccountRepository().UpdateBalances(ctx, target.Id, inTx.BalanceAfter, target.AvailableBalance+req.Amount); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishTransactionEvent(ctx, source.UserId, outTx)

	res := toTransactionResponse(outTx)
	return &res, nil
}

// applyTransaction records a single-account movement inside one transaction.
func (s *accountService) applyTransaction(ctx context.Context, account *entity.Account, txType entity.TransactionType, amount float64, description, counterparty string) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	delta := amount
	if txType == entity.TransactionTypeWithdrawal || txType == entity.TransactionTypeTransferOut || txType == entity.TransactionTypePayment {
		delta = -amount
	}

	now := time.Now()
	number, err := generateNumber("TXN", 16)
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		AccountId:           account.Id,
		TransactionNumber:   number,
		TransactionType:     txType,
		Amount:              amount,
		Currency:            account.Currency,
		BalanceBefore:       account.Balance,
		BalanceAfter:        account.Balance + delta,
		Status:              entity.TransactionStatusCompleted,
		Description:         description,
		CounterpartyAccount: counterparty,
		ProcessedAt:         &now,
		CreatedAt:           now,
	}
	if err := uow.TransactionRepository().Create(ctx, tx); err != nil {
		return nil, err
	}

	if err := uow.AccountRepository().UpdateBalances(ctx, account.Id, tx.BalanceAfter, account.AvailableBalance+delta); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishTransactionEvent(ctx, account.UserId, tx)

	res := toTransactionResponse(tx)
	return &res, nil
}

func (s *accountService) publishTransactionEvent(ctx context.Context, userID uint, tx *entity.Transaction) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events.NewBaseEvent("TRANSACTION_COMPLETED", map[string]interface{}{
		"user_id":            userID,
		"transaction_number": tx.TransactionNumber,
		"transaction_type":   string(tx.TransactionType),
		"amount":             tx.Amount,
		"currency":           tx.Currency,
	}))
}

func (s *accountService) GetTransactions(ctx context.Context, userID uint, accountNumber string, limit int) ([]dto.TransactionResponse, error) {
	account, err := s.ownedAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, err := uow.TransactionRepository().FindRecentByAccount(ctx, account.Id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = toTransactionResponse(tx)
	}
	return out, nil
}

func toAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		Id:               a.Id,
		AccountNumber:    a.AccountNumber,
		AccountType:      string(a.AccountType),
		Currency:         a.Currency,
		Balance:          a.Balance,
		AvailableBalance: a.AvailableBalance,
		Status:           string(a.Status),
		DailyLimit:       a.DailyLimit,
		MonthlyLimit:     a.MonthlyLimit,
		OpenedDate:       a.OpenedDate,
	}
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:                  t.Id,
		TransactionNumber:   t.TransactionNumber,
		TransactionType:     string(t.TransactionType),
		Amount:              t.Amount,
		Currency:            t.Currency,
		BalanceAfter:        t.BalanceAfter,
		Status:              string(t.Status),
		Description:         t.Description,
		CounterpartyAccount: t.CounterpartyAccount,
		ProcessedAt:         t.ProcessedAt,
		CreatedAt:           t.CreatedAt,
	}
}
