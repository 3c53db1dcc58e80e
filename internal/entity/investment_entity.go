package entity

import "time"

type InvestmentType string
type InvestmentRisk string

const (
	InvestmentTypeFund  InvestmentType = "fund"
	InvestmentTypeBond  InvestmentType = "bond"
	InvestmentTypeStock InvestmentType = "stock"

	InvestmentRiskLow    InvestmentRisk = "low"
	InvestmentRiskMedium InvestmentRisk = "medium"
	InvestmentRiskHigh   InvestmentRisk = "high"
)

type InvestmentProduct struct {
	Id             uint
	Name           string
	ProductCode    string
	InvestmentType InvestmentType
	RiskLevel      InvestmentRisk
	ExpectedReturn float64
	MinInvestment  float64
	Currency       string
	IsAvailable    bool
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type InvestmentAccount struct {
	Id               uint
	UserId           uint
	ProductId        uint
	AccountNumber    string
	InvestmentAmount float64
	CurrentValue     float64
	TotalReturn      float64
	ReturnRate       float64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
