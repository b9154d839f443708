package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`      // Unique username
	Email        string    `json:"email" db:"email"`            // User email, may be empty
	PasswordHash string    `json:"-" db:"password_hash"`        // Bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`              // "admin" or "user"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`  // Last update timestamp
}

// UserUpdate holds the partial fields of an update. Nil fields are left
// untouched.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
	Role         *string
}
