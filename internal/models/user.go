package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // User email
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`         // Back-office operator flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
