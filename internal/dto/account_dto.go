package dto

import "time"

type CreateAccountRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=savings checking credit loan"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type AccountResponse struct {
	Id               uint      `json:"id"`
	AccountNumber    string    `json:"account_number"`
	AccountType      string    `json:"account_type"`
	Currency         string    `json:"currency"`
	Balance          float64   `json:"balance"`
	AvailableBalance float64   `json:"available_balance"`
	Status           string    `json:"status"`
	DailyLimit       float64   `json:"daily_limit"`
	MonthlyLimit     float64   `json:"monthly_limit"`
	OpenedDate       time.Time `json:"opened_date"`
}

type DepositRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type WithdrawRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type TransferRequest struct {
	ToAccountNumber string  `json:"to_account_number" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description"`
}

type TransactionResponse struct {
	Id                  uint       `json:"id"`
	TransactionNumber   string     `json:"transaction_number"`
	TransactionType     string     `json:"transaction_type"`
	Amount              float64    `json:"amount"`
	Currency            string     `json:"currency"`
	BalanceAfter        float64    `json:"balance_after"`
	Status              string     `json:"status"`
	Description         string     `json:"description,omitempty"`
	CounterpartyAccount string     `json:"counterparty_account,omitempty"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
