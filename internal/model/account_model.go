package model

import (
	"time"

	"gorm.io/gorm"
)

type Account struct {
	Id               uint           `gorm:"primaryKey;autoIncrement"`
	UserId           uint           `gorm:"not null;index"`
	AccountNumber    string         `gorm:"type:varchar(20);uniqueIndex;not null"`
	AccountType      string         `gorm:"type:varchar(20);not null"` // savings, checking, credit, loan
	Currency         string         `gorm:"type:varchar(3);not null;default:'CNY'"`
	Balance          float64        `gorm:"default:0"`
	AvailableBalance float64        `gorm:"default:0"`
	Status           string         `gorm:"type:varchar(20);not null;default:'active'"`
	DailyLimit       float64        `gorm:"default:50000"`
	MonthlyLimit     float64        `gorm:"default:1000000"`
	Description      string         `gorm:"type:varchar(500)"`
	OpenedDate       time.Time
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Account) TableName() string {
	return "accounts"
}

type Transaction struct {
	Id                  uint    `gorm:"primaryKey;autoIncrement"`
	AccountId           uint    `gorm:"not null;index"`
	TransactionNumber   string  `gorm:"type:varchar(30);uniqueIndex;not null"`
	TransactionType     string  `gorm:"type:varchar(20);not null"` // deposit, withdrawal, transfer_in, transfer_out, payment, refund
	Amount              float64 `gorm:"not null"`
	Currency            string  `gorm:"type:varchar(3);not null;default:'CNY'"`
	BalanceBefore       float64 `gorm:"not null"`
	BalanceAfter        float64 `gorm:"not null"`
	Status              string  `gorm:"type:varchar(20);not null;default:'pending'"`
	Description         string  `gorm:"type:varchar(500)"`
	CounterpartyAccount string  `gorm:"type:varchar(20)"`
	ProcessedAt         *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
