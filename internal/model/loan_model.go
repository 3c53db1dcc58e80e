package model

import (
	"time"

	"gorm.io/gorm"
)

type LoanProduct struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	Name           string         `gorm:"type:varchar(100);not null"`
	ProductCode    string         `gorm:"type:varchar(20);uniqueIndex;not null"`
	LoanType       string         `gorm:"type:varchar(30);not null"` // personal, mortgage, auto, business
	MinAmount      float64        `gorm:"not null"`
	MaxAmount      float64        `gorm:"not null"`
	MinTermMonths  int            `gorm:"not null"`
	MaxTermMonths  int            `gorm:"not null"`
	InterestRate   float64        `gorm:"not null"`
	ProcessingFee  float64        `gorm:"default:0"`
	MinIncome      float64        `gorm:"default:0"`
	MinCreditScore int            `gorm:"default:0"`
	IsAvailable    bool           `gorm:"default:true"`
	Description    string         `gorm:"type:text"`
	Requirements   string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (LoanProduct) TableName() string {
	return "loan_products"
}

type LoanApplication struct {
	Id                  uint      `gorm:"primaryKey;autoIncrement"`
	UserId              uint      `gorm:"not null;index"`
	ProductId           uint      `gorm:"not null;index"`
	ApplicationNumber   string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	RequestedAmount     float64   `gorm:"not null"`
	RequestedTermMonths int       `gorm:"not null"`
	Purpose             string    `gorm:"type:varchar(200)"`
	MonthlyIncome       float64   `gorm:"default:0"`
	EmploymentStatus    string    `gorm:"type:varchar(50)"`
	Status              string    `gorm:"type:varchar(20);not null;default:'submitted'"` // submitted, in_review, approved, rejected
	ApprovedAmount      *float64
	ApprovedTermMonths  *int
	ApprovedRate        *float64
	ReviewedAt          *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (LoanApplication) TableName() string {
	return "loan_applications"
}
