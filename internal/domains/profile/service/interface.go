package service

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/profile/model"
	"coderr-backend/internal/shared"
)

type Service interface {
	Register(ctx context.Context, req model.RegistrationRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, principal shared.Principal, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error)

	ListBusinessProfiles(ctx context.Context) ([]model.BusinessProfileResponse, error)
	ListCustomerProfiles(ctx context.Context) ([]model.CustomerProfileResponse, error)

	DeleteUser(ctx context.Context, principal shared.Principal, userID uuid.UUID) error
}
