package dto

import "time"

type InvestmentProductResponse struct {
	Id             uint    `json:"id"`
	Name           string  `json:"name"`
	ProductCode    string  `json:"product_code"`
	InvestmentType string  `json:"investment_type"`
	RiskLevel      string  `json:"risk_level"`
	ExpectedReturn float64 `json:"expected_return"`
	MinInvestment  float64 `json:"min_investment"`
	Currency       string  `json:"currency"`
	Description    string  `json:"description,omitempty"`
}

type PurchaseInvestmentRequest struct {
	ProductCode string  `json:"product_code" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type InvestmentAccountResponse struct {
	Id               uint      `json:"id"`
	AccountNumber    string    `json:"account_number"`
	ProductCode      string    `json:"product_code,omitempty"`
	ProductName      string    `json:"product_name,omitempty"`
	InvestmentAmount float64   `json:"investment_amount"`
	CurrentValue     float64   `json:"current_value"`
	TotalReturn      float64   `json:"total_return"`
	ReturnRate       float64   `json:"return_rate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
