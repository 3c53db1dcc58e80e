package entity

import "time"

type UserStatus string
type RiskLevel string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusClosed    UserStatus = "closed"

	RiskLevelConservative RiskLevel = "conservative"
	RiskLevelModerate     RiskLevel = "moderate"
	RiskLevelAggressive   RiskLevel = "aggressive"
)

type User struct {
	Id             uint
	Username       string
	Email          string
	FullName       string
	Phone          string
	HashedPassword string
	IsVerified     bool
	Status         UserStatus
	RiskLevel      RiskLevel
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
