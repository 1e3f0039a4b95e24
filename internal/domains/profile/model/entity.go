package model

import (
	"time"

	"github.com/google/uuid"

	"coderr-backend/internal/shared"
)

// User is the account entity. Type is assigned at registration and never
// changes afterwards.
type User struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Username     string      `json:"username" db:"username"`
	Email        string      `json:"email" db:"email"`
	PasswordHash string      `json:"-" db:"password_hash"`
	Type         shared.Role `json:"type" db:"type"`
	IsStaff      bool        `json:"-" db:"is_staff"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// Profile holds the free-form contact and business fields, 1:1 with User.
type Profile struct {
	UserID       uuid.UUID `json:"user" db:"user_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	File         *string   `json:"file" db:"file"`
	Location     string    `json:"location" db:"location"`
	Tel          string    `json:"tel" db:"tel"`
	Description  string    `json:"description" db:"description"`
	WorkingHours string    `json:"working_hours" db:"working_hours"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileWithUser is the read model for profile endpoints: profile fields
// joined with the owning user's account fields.
type ProfileWithUser struct {
	Profile
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Type     shared.Role `json:"type"`
}
