package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"coderr-backend/internal/domains/profile/model"
	"coderr-backend/internal/domains/profile/repository"
	"coderr-backend/internal/shared"
	"coderr-backend/pkg/jwt"
	"coderr-backend/pkg/logger"
)

type profileService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewProfileService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &profileService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *profileService) Register(ctx context.Context, req model.RegistrationRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Type:         shared.Role(req.Type),
	}

	// Profile rows start empty; users fill them in via PATCH /profile/:id.
	created, err := s.repo.CreateUserWithProfile(ctx, user, &model.Profile{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(created.ID.String(), created.Username, created.Type.String(), created.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": created.ID,
		"type":    created.Type,
	})

	return &model.AuthResponse{
		Token:    token,
		Username: created.Username,
		Email:    created.Email,
		UserID:   created.ID,
	}, nil
}

func (s *profileService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// Same error for unknown user and wrong password.
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Username, user.Type.String(), user.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.ToResponse(), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, principal shared.Principal, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	if principal.UserID != userID {
		return nil, model.ErrNotPermitted
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Partial update: unspecified fields keep their prior values.
	next := current.Profile
	if req.FirstName != nil {
		next.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		next.LastName = *req.LastName
	}
	if req.File != nil {
		next.File = req.File
	}
	if req.Location != nil {
		next.Location = *req.Location
	}
	if req.Tel != nil {
		next.Tel = *req.Tel
	}
	if req.Description != nil {
		next.Description = *req.Description
	}
	if req.WorkingHours != nil {
		next.WorkingHours = *req.WorkingHours
	}

	updated, err := s.repo.UpdateProfile(ctx, &next, req.Email)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *profileService) ListBusinessProfiles(ctx context.Context) ([]model.BusinessProfileResponse, error) {
	profiles, err := s.repo.ListProfilesByType(ctx, shared.RoleBusiness)
	if err != nil {
		return nil, err
	}

	result := make([]model.BusinessProfileResponse, 0, len(profiles))
	for i := range profiles {
		result = append(result, profiles[i].ToBusinessResponse())
	}
	return result, nil
}

func (s *profileService) ListCustomerProfiles(ctx context.Context) ([]model.CustomerProfileResponse, error) {
	profiles, err := s.repo.ListProfilesByType(ctx, shared.RoleCustomer)
	if err != nil {
		return nil, err
	}

	result := make([]model.CustomerProfileResponse, 0, len(profiles))
	for i := range profiles {
		result = append(result, profiles[i].ToCustomerResponse())
	}
	return result, nil
}

func (s *profileService) DeleteUser(ctx context.Context, principal shared.Principal, userID uuid.UUID) error {
	if !principal.IsStaff() {
		return model.ErrNotPermitted
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	logger.Info("user deleted", map[string]interface{}{
		"user_id":    userID,
		"deleted_by": principal.UserID,
	})
	return nil
}
