package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a business user. Each reviewer may rate
// a given business user once; the database enforces this with a unique
// constraint over the pair.
type Review struct {
	ID             uuid.UUID `json:"id" db:"id"`
	BusinessUserID uuid.UUID `json:"business_user" db:"business_user_id"`
	ReviewerID     uuid.UUID `json:"reviewer" db:"reviewer_id"`
	Rating         int       `json:"rating" db:"rating"`
	Description    string    `json:"description" db:"description"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
