package repository

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/profile/model"
	"coderr-backend/internal/shared"
)

// Repository is the persistence boundary of the profile domain. Other
// domains reuse it for user lookups (order and review services resolve
// business users through it).
type Repository interface {
	// CreateUserWithProfile inserts the user and its profile atomically.
	CreateUserWithProfile(ctx context.Context, user *model.User, profile *model.Profile) (*model.User, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.ProfileWithUser, error)
	ListProfilesByType(ctx context.Context, role shared.Role) ([]model.ProfileWithUser, error)

	// UpdateProfile writes profile fields and, when email is non-nil, the
	// user's email, in one transaction.
	UpdateProfile(ctx context.Context, profile *model.Profile, email *string) (*model.ProfileWithUser, error)

	// DeleteUser removes the user; the schema cascades to profile, offers,
	// orders and reviews.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
