package dto

import "time"

type LoanProductResponse struct {
	Id            uint    `json:"id"`
	Name          string  `json:"name"`
	ProductCode   string  `json:"product_code"`
	LoanType      string  `json:"loan_type"`
	MinAmount     float64 `json:"min_amount"`
	MaxAmount     float64 `json:"max_amount"`
	MinTermMonths int     `json:"min_term_months"`
	MaxTermMonths int     `json:"max_term_months"`
	InterestRate  float64 `json:"interest_rate"`
	ProcessingFee float64 `json:"processing_fee"`
	Description   string  `json:"description,omitempty"`
	Requirements  string  `json:"requirements,omitempty"`
}

type LoanApplicationRequest struct {
	ProductCode         string  `json:"product_code" validate:"required"`
	RequestedAmount     float64 `json:"requested_amount" validate:"required,gt=0"`
	RequestedTermMonths int     `json:"requested_term_months" validate:"required,gt=0"`
	Purpose             string  `json:"purpose"`
	MonthlyIncome       float64 `json:"monthly_income" validate:"gte=0"`
	EmploymentStatus    string  `json:"employment_status"`
}

type LoanApplicationResponse struct {
	Id                  uint      `json:"id"`
	ApplicationNumber   string    `json:"application_number"`
	ProductCode         string    `json:"product_code,omitempty"`
	RequestedAmount     float64   `json:"requested_amount"`
	RequestedTermMonths int       `json:"requested_term_months"`
	Purpose             string    `json:"purpose,omitempty"`
	Status              string    `json:"status"`
	ApprovedAmount      *float64  `json:"approved_amount,omitempty"`
	ApprovedRate        *float64  `json:"approved_rate,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
