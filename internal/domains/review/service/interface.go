package service

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/review/model"
	"coderr-backend/internal/shared"
)

type Service interface {
	CreateReview(ctx context.Context, principal shared.Principal, req model.CreateReviewRequest) (*model.Review, error)
	ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*model.Review, error)
	UpdateReview(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, principal shared.Principal, id uuid.UUID) error
}
