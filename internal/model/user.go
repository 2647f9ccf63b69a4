package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles form a closed set; there is no dynamic permission model.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User is an API account. PasswordHash never leaves the persistence layer.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
