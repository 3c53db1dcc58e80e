package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	Id             uint   `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName       string `gorm:"type:varchar(100);not null"`
	Phone          string `gorm:"type:varchar(20);index"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	IsVerified     bool   `gorm:"default:false"`
	Status         string `gorm:"type:varchar(50);not null;default:'active'"`
	RiskLevel      string `gorm:"type:varchar(20);not null;default:'moderate'"`
	LastLogin      *time.Time
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
