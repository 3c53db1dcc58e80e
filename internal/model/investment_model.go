package model

import (
	"time"

	"gorm.io/gorm"
)

type InvestmentProduct struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	Name           string         `gorm:"type:varchar(100);not null"`
	ProductCode    string         `gorm:"type:varchar(20);uniqueIndex;not null"`
	InvestmentType string         `gorm:"type:varchar(30);not null"` // fund, bond, stock
	RiskLevel      string         `gorm:"type:varchar(20);not null"` // low, medium, high
	ExpectedReturn float64        `gorm:"not null"`
	MinInvestment  float64        `gorm:"not null"`
	Currency       string         `gorm:"type:varchar(3);not null;default:'CNY'"`
	IsAvailable    bool           `gorm:"default:true"`
	Description    string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (InvestmentProduct) TableName() string {
	return "investment_products"
}

type InvestmentAccount struct {
	Id               uint      `gorm:"primaryKey;autoIncrement"`
	UserId           uint      `gorm:"not null;index"`
	ProductId        uint      `gorm:"not null;index"`
	AccountNumber    string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	InvestmentAmount float64   `gorm:"not null"`
	CurrentValue     float64   `gorm:"not null"`
	TotalReturn      float64   `gorm:"default:0"`
	ReturnRate       float64   `gorm:"default:0"`
	Status           string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (InvestmentAccount) TableName() string {
	return "investment_accounts"
}
