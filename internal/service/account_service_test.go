package service

import (
	"context"
	"strings"
	"testing"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/contract"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo keeps accounts in a slice and resolves only the
// specifications the account service actually uses.
type fakeAccountRepo struct {
	accounts []*entity.Account
	nextId   uint
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	f.nextId++
	account.Id = f.nextId
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error { return nil }

func (f *fakeAccountRepo) Delete(ctx context.Context, id uint) error { return nil }

func (f *fakeAccountRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Account, error) {
	for _, a := range f.accounts {
		if f.matches(a, specs) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range f.accounts {
		if f.matches(a, specs) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := f.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (f *fakeAccountRepo) UpdateBalances(ctx context.Context, id uint, balance, available float64) error {
	for _, a := range f.accounts {
		if a.Id == id {
			a.Balance = balance
			a.AvailableBalance = available
			return nil
		}
	}
	return nil
}

func (f *fakeAccountRepo) matches(a *entity.Account, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByAccountNumber:
			if a.AccountNumber != spec.Number {
				return false
			}
		case specification.OwnedBy:
			if a.UserId != spec.UserID {
				return false
			}
		}
	}
	return true
}

type fakeTransactionRepo struct {
	txs    []*entity.Transaction
	nextId uint
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	f.nextId++
	tx.Id = f.nextId
	f.txs = append(f.txs, tx)
	return nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error { return nil }

func (f *fakeTransactionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	return append([]*entity.Transaction{}, f.txs...), nil
}

func (f *fakeTransactionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.txs)), nil
}

func (f *fakeTransactionRepo) FindRecentByAccount(ctx context.Context, accountId uint, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for i := len(f.txs) - 1; i >= 0 && len(out) < limit; i-- {
		if f.txs[i].AccountId == accountId {
			out = append(out, f.txs[i])
		}
	}
	return out, nil
}

// fakeUnitOfWork satisfies the full contract but only wires the repos
// the banking flows touch.
type fakeUnitOfWork struct {
	accounts *fakeAccountRepo
	txs      *fakeTransactionRepo

	begun      int
	committed  int
	rolledBack int
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { f.begun++; return nil }
func (f *fakeUnitOfWork) Commit() error                   { f.committed++; return nil }
func (f *fakeUnitOfWork) Rollback() error                 { f.rolledBack++; return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository               { return nil }
func (f *fakeUnitOfWork) AccountRepository() contract.AccountRepository         { return f.accounts }
func (f *fakeUnitOfWork) TransactionRepository() contract.TransactionRepository { return f.txs }
func (f *fakeUnitOfWork) LoanProductRepository() contract.LoanProductRepository { return nil }
func (f *fakeUnitOfWork) LoanApplicationRepository() contract.LoanApplicationRepository {
	return nil
}
func (f *fakeUnitOfWork) InvestmentProductRepository() contract.InvestmentProductRepository {
	return nil
}
func (f *fakeUnitOfWork) InvestmentAccountRepository() contract.InvestmentAccountRepository {
	return nil
}
func (f *fakeUnitOfWork) KnowledgeDocumentRepository() contract.KnowledgeDocumentRepository {
	return nil
}
func (f *fakeUnitOfWork) EscalationAlertRepository() contract.EscalationAlertRepository {
	return nil
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newBankingFixture() (*fakeUnitOfWork, IAccountService) {
	uow := &fakeUnitOfWork{
		accounts: &fakeAccountRepo{},
		txs:      &fakeTransactionRepo{},
	}
	return uow, NewAccountService(&fakeUowFactory{uow: uow}, nil)
}

func seedAccount(uow *fakeUnitOfWork, userId uint, number string, balance float64) *entity.Account {
	account := &entity.Account{
		UserId:           userId,
		AccountNumber:    number,
		AccountType:      entity.AccountTypeSavings,
		Currency:         "CNY",
		Balance:          balance,
		AvailableBalance: balance,
		Status:           entity.AccountStatusActive,
		DailyLimit:       50000,
		MonthlyLimit:     1000000,
	}
	_ = uow.accounts.Create(context.Background(), account)
	return account
}

func TestCreateAccountGeneratesCardNumber(t *testing.T) {
	_, svc := newBankingFixture()

	res, err := svc.CreateAccount(context.Background(), 1, &dto.CreateAccountRequest{
		AccountType: "savings",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.AccountNumber, "6226"))
	assert.Len(t, res.AccountNumber, 16)
	assert.Equal(t, "CNY", res.Currency)
	assert.Equal(t, 0.0, res.Balance)
	assert.Equal(t, "active", res.Status)
}

func TestDepositIncreasesBalance(t *testing.T) {
	uow, svc := newBankingFixture()
	account := seedAccount(uow, 1, "6226000000000001", 100)

	res, err := svc.Deposit(context.Background(), 1, account.AccountNumber, &dto.DepositRequest{Amount: 50})

	require.NoError(t, err)
	assert.Equal(t, "deposit", res.TransactionType)
	assert.Equal(t, 150.0, res.BalanceAfter)
	assert.Equal(t, 150.0, account.Balance)
	assert.Equal(t, 150.0, account.AvailableBalance)
	assert.Equal(t, 1, uow.committed)
}

func TestWithdrawRejectsInsufficientBalance(t *testing.T) {
	uow, svc := newBankingFixture()
	account := seedAccount(uow, 1, "6226000000000001", 100)

	_, err := svc.Withdraw(context.Background(), 1, account.AccountNumber, &dto.WithdrawRequest{Amount: 200})

	assert.EqualError(t, err, "insufficient available balance")
	assert.Equal(t, 100.0, account.Balance)
	assert.Equal(t, 0, uow.committed)
}

func TestWithdrawRejectsOverDailyLimit(t *testing.T) {
	uow, svc := newBankingFixture()
	account := seedAccount(uow, 1, "6226000000000001", 100000)

	_, err := svc.Withdraw(context.Background(), 1, account.AccountNumber, &dto.WithdrawRequest{Amount: 60000})

	assert.EqualError(t, err, "amount exceeds daily limit")
	assert.Equal(t, 0, uow.committed)
}

func TestWithdrawEnforcesOwnership(t *testing.T) {
	uow, svc := newBankingFixture()
	account := seedAccount(uow, 1, "6226000000000001", 100)

	_, err := svc.Withdraw(context.Background(), 2, account.AccountNumber, &dto.WithdrawRequest{Amount: 10})

	assert.EqualError(t, err, "account not found")
}

func TestTransferMovesBothBalances(t *testing.T) {
	uow, svc := newBankingFixture()
	source := seedAccount(uow, 1, "6226000000000001", 1000)
	target := seedAccount(uow, 2, "6226000000000002", 500)

	res, err := svc.Transfer(context.Background(), 1, source.AccountNumber, &dto.TransferRequest{
		ToAccountNumber: target.AccountNumber,
		Amount:          300,
	})

	require.NoError(t, err)
	assert.Equal(t, "transfer_out", res.TransactionType)
	assert.Equal(t, 700.0, res.BalanceAfter)
	assert.Equal(t, target.AccountNumber, res.CounterpartyAccount)

	assert.Equal(t, 700.0, source.Balance)
	assert.Equal(t, 800.0, target.Balance)
	assert.Equal(t, 1, uow.committed)

	// Paired legs share amount and mirror counterparties.
	require.Len(t, uow.txs.txs, 2)
	assert.Equal(t, entity.TransactionTypeTransferOut, uow.txs.txs[0].TransactionType)
	assert.Equal(t, entity.TransactionTypeTransferIn, uow.txs.txs[1].TransactionType)
	assert.Equal(t, source.AccountNumber, uow.txs.txs[1].CounterpartyAccount)
}

func TestTransferRejectsSameAccount(t *testing.T) {
	uow, svc := newBankingFixture()
	source := seedAccount(uow, 1, "6226000000000001", 1000)

	_, err := svc.Transfer(context.Background(), 1, source.AccountNumber, &dto.TransferRequest{
		ToAccountNumber: source.AccountNumber,
		Amount:          100,
	})

	assert.EqualError(t, err, "cannot transfer to the same account")
}

func TestTransferRejectsUnknownTarget(t *testing.T) {
	uow, svc := newBankingFixture()
	source := seedAccount(uow, 1, "6226000000000001", 1000)

	_, err := svc.Transfer(context.Background(), 1, source.AccountNumber, &dto.TransferRequest{
		ToAccountNumber: "6226999999999999",
		Amount:          100,
	})

	assert.EqualError(t, err, "target account not found")
	assert.Equal(t, 0, uow.committed)
}

func TestGetTransactionsNewestFirst(t *testing.T) {
	uow, svc := newBankingFixture()
	account := seedAccount(uow, 1, "6226000000000001", 100)

	_, err := svc.Deposit(context.Background(), 1, account.AccountNumber, &dto.DepositRequest{Amount: 10})
	require.NoError(t, err)
	_, err = svc.Withdraw(context.Background(), 1, account.AccountNumber, &dto.WithdrawRequest{Amount: 5})
	require.NoError(t, err)

	txs, err := svc.GetTransactions(context.Background(), 1, account.AccountNumber, 10)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "withdrawal", txs[0].TransactionType)
	assert.Equal(t, "deposit", txs[1].TransactionType)
}
