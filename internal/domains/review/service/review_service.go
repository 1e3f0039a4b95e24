package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	profilemodel "coderr-backend/internal/domains/profile/model"
	profilerepo "coderr-backend/internal/domains/profile/repository"
	"coderr-backend/internal/domains/review/model"
	"coderr-backend/internal/domains/review/repository"
	"coderr-backend/internal/shared"
	"coderr-backend/pkg/logger"
)

type reviewService struct {
	repo        repository.Repository
	profileRepo profilerepo.Repository
}

func NewReviewService(repo repository.Repository, profileRepo profilerepo.Repository) Service {
	return &reviewService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, principal shared.Principal, req model.CreateReviewRequest) (*model.Review, error) {
	if !principal.IsCustomer() {
		return nil, model.ErrCustomerOnly
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The unique constraint on (business_user_id, reviewer_id) backstops
	// this check under concurrent requests.
	target, err := s.profileRepo.GetUserByID(ctx, *req.BusinessUser)
	if err != nil {
		if errors.Is(err, profilemodel.ErrUserNotFound) {
			return nil, model.ErrBusinessUserNotFound
		}
		return nil, err
	}
	if target.Type != shared.RoleBusiness {
		return nil, model.ErrBusinessUserNotFound
	}

	review := &model.Review{
		ID:             uuid.New(),
		BusinessUserID: *req.BusinessUser,
		ReviewerID:     principal.UserID,
		Rating:         *req.Rating,
		Description:    req.Description,
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	logger.Info("review created", map[string]interface{}{
		"review_id":     created.ID,
		"business_user": created.BusinessUserID,
		"reviewer":      created.ReviewerID,
	})
	return created, nil
}

func (s *reviewService) ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, req)
}

func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	return s.repo.GetReviewByID(ctx, id)
}

func (s *reviewService) UpdateReview(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.ReviewerID != principal.UserID {
		return nil, model.ErrNotPermitted
	}

	next := *current
	if req.Rating != nil {
		next.Rating = *req.Rating
	}
	if req.Description != nil {
		next.Description = *req.Description
	}

	return s.repo.UpdateReview(ctx, &next)
}

func (s *reviewService) DeleteReview(ctx context.Context, principal shared.Principal, id uuid.UUID) error {
	current, err := s.repo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ReviewerID != principal.UserID {
		return model.ErrNotPermitted
	}

	if err := s.repo.DeleteReview(ctx, id); err != nil {
		return err
	}

	logger.Info("review deleted", map[string]interface{}{
		"review_id": id,
		"reviewer":  principal.UserID,
	})
	return nil
}
