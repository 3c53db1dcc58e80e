package entity

import "time"

type LoanApplicationStatus string

const (
	LoanApplicationStatusSubmitted LoanApplicationStatus = "submitted"
	LoanApplicationStatusInReview  LoanApplicationStatus = "in_review"
	LoanApplicationStatusApproved  LoanApplicationStatus = "approved"
	LoanApplicationStatusRejected  LoanApplicationStatus = "rejected"
)

type LoanProduct struct {
	Id             uint
	Name           string
	ProductCode    string
	LoanType       string
	MinAmount      float64
	MaxAmount      float64
	MinTermMonths  int
	MaxTermMonths  int
	InterestRate   float64
	ProcessingFee  float64
	MinIncome      float64
	MinCreditScore int
	IsAvailable    bool
	Description    string
	Requirements   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type LoanApplication struct {
	Id                  uint
	UserId              uint
	ProductId           uint
	ApplicationNumber   string
	RequestedAmount     float64
	RequestedTermMonths int
	Purpose             string
	MonthlyIncome       float64
	EmploymentStatus    string
	Status              LoanApplicationStatus
	ApprovedAmount      *float64
	ApprovedTermMonths  *int
	ApprovedRate        *float64
	ReviewedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
