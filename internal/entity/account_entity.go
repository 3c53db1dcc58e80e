package entity

import "time"

type AccountType string
type AccountStatus string
type TransactionType string
type TransactionStatus string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeChecking AccountType = "checking"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeLoan     AccountType = "loan"

	AccountStatusActive AccountStatus = "active"
	AccountStatusFrozen AccountStatus = "frozen"
	AccountStatusClosed AccountStatus = "closed"

	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypePayment     TransactionType = "payment"
	TransactionTypeRefund      TransactionType = "refund"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type Account struct {
	Id               uint
	UserId           uint
	AccountNumber    string
	AccountType      AccountType
	Currency         string
	Balance          float64
	AvailableBalance float64
	Status           AccountStatus
	DailyLimit       float64
	MonthlyLimit     float64
	Description      string
	OpenedDate       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Transaction struct {
	Id                  uint
	AccountId           uint
	TransactionNumber   string
	TransactionType     TransactionType
	Amount              float64
	Currency            string
	BalanceBefore       float64
	BalanceAfter        float64
	Status              TransactionStatus
	Description         string
	CounterpartyAccount string
	ProcessedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
