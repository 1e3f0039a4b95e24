package repository

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/review/model"
)

type Repository interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error)
	UpdateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
