package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profilemodel "coderr-backend/internal/domains/profile/model"
	"coderr-backend/internal/domains/review/model"
	"coderr-backend/internal/shared"
)

type mockReviewRepository struct {
	createReviewFn  func(ctx context.Context, review *model.Review) (*model.Review, error)
	getReviewByIDFn func(ctx context.Context, id uuid.UUID) (*model.Review, error)
	listReviewsFn   func(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error)
	updateReviewFn  func(ctx context.Context, review *model.Review) (*model.Review, error)
	deleteReviewFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReviewRepository) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	return m.createReviewFn(ctx, review)
}

func (m *mockReviewRepository) GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	return m.getReviewByIDFn(ctx, id)
}

func (m *mockReviewRepository) ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error) {
	return m.listReviewsFn(ctx, req)
}

func (m *mockReviewRepository) UpdateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	return m.updateReviewFn(ctx, review)
}

func (m *mockReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return m.deleteReviewFn(ctx, id)
}

type mockProfileRepository struct {
	getUserByIDFn func(ctx context.Context, id uuid.UUID) (*profilemodel.User, error)
}

func (m *mockProfileRepository) CreateUserWithProfile(ctx context.Context, user *profilemodel.User, profile *profilemodel.Profile) (*profilemodel.User, error) {
	panic("not implemented")
}

func (m *mockProfileRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*profilemodel.User, error) {
	return m.getUserByIDFn(ctx, id)
}

func (m *mockProfileRepository) GetUserByUsername(ctx context.Context, username string) (*profilemodel.User, error) {
	panic("not implemented")
}

func (m *mockProfileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*profilemodel.ProfileWithUser, error) {
	panic("not implemented")
}

func (m *mockProfileRepository) ListProfilesByType(ctx context.Context, role shared.Role) ([]profilemodel.ProfileWithUser, error) {
	panic("not implemented")
}

func (m *mockProfileRepository) UpdateProfile(ctx context.Context, profile *profilemodel.Profile, email *string) (*profilemodel.ProfileWithUser, error) {
	panic("not implemented")
}

func (m *mockProfileRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	panic("not implemented")
}

func intPtr(n int) *int              { return &n }
func strPtr(s string) *string        { return &s }
func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }

func businessUserRepo(businessUserID uuid.UUID) *mockProfileRepository {
	return &mockProfileRepository{
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*profilemodel.User, error) {
			return &profilemodel.User{ID: businessUserID, Type: shared.RoleBusiness}, nil
		},
	}
}

func TestCreateReview(t *testing.T) {
	customer := shared.Principal{UserID: uuid.New(), Role: shared.RoleCustomer}
	businessUserID := uuid.New()

	validReq := model.CreateReviewRequest{
		BusinessUser: uuidPtr(businessUserID),
		Rating:       intPtr(4),
		Description:  "Great work",
	}

	t.Run("customer reviews a business user", func(t *testing.T) {
		repo := &mockReviewRepository{
			createReviewFn: func(ctx context.Context, review *model.Review) (*model.Review, error) {
				return review, nil
			},
		}

		svc := NewReviewService(repo, businessUserRepo(businessUserID))
		created, err := svc.CreateReview(context.Background(), customer, validReq)
		require.NoError(t, err)

		assert.Equal(t, businessUserID, created.BusinessUserID)
		assert.Equal(t, customer.UserID, created.ReviewerID)
		assert.Equal(t, 4, created.Rating)
	})

	t.Run("business user cannot review", func(t *testing.T) {
		business := shared.Principal{UserID: uuid.New(), Role: shared.RoleBusiness}

		svc := NewReviewService(&mockReviewRepository{}, businessUserRepo(businessUserID))
		_, err := svc.CreateReview(context.Background(), business, validReq)
		assert.ErrorIs(t, err, model.ErrCustomerOnly)
	})

	t.Run("target must be a business user", func(t *testing.T) {
		customerTarget := &mockProfileRepository{
			getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*profilemodel.User, error) {
				return &profilemodel.User{ID: id, Type: shared.RoleCustomer}, nil
			},
		}

		svc := NewReviewService(&mockReviewRepository{}, customerTarget)
		_, err := svc.CreateReview(context.Background(), customer, validReq)
		assert.ErrorIs(t, err, model.ErrBusinessUserNotFound)
	})

	t.Run("duplicate review surfaces as conflict", func(t *testing.T) {
		repo := &mockReviewRepository{
			createReviewFn: func(ctx context.Context, review *model.Review) (*model.Review, error) {
				return nil, model.ErrDuplicateReview
			},
		}

		svc := NewReviewService(repo, businessUserRepo(businessUserID))
		_, err := svc.CreateReview(context.Background(), customer, validReq)
		assert.ErrorIs(t, err, model.ErrDuplicateReview)
	})

	t.Run("rating outside 1..5 is rejected", func(t *testing.T) {
		req := validReq
		req.Rating = intPtr(6)

		svc := NewReviewService(&mockReviewRepository{}, businessUserRepo(businessUserID))
		_, err := svc.CreateReview(context.Background(), customer, req)
		assert.Error(t, err)
	})
}

func TestUpdateReview(t *testing.T) {
	reviewer := shared.Principal{UserID: uuid.New(), Role: shared.RoleCustomer}
	reviewID := uuid.New()

	stored := func() *model.Review {
		return &model.Review{
			ID:          reviewID,
			ReviewerID:  reviewer.UserID,
			Rating:      3,
			Description: "Okay",
		}
	}

	t.Run("reviewer patches rating only", func(t *testing.T) {
		repo := &mockReviewRepository{
			getReviewByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Review, error) {
				return stored(), nil
			},
			updateReviewFn: func(ctx context.Context, review *model.Review) (*model.Review, error) {
				return review, nil
			},
		}

		svc := NewReviewService(repo, &mockProfileRepository{})
		updated, err := svc.UpdateReview(context.Background(), reviewer, reviewID, model.UpdateReviewRequest{
			Rating: intPtr(5),
		})
		require.NoError(t, err)

		assert.Equal(t, 5, updated.Rating)
		// untouched field keeps its prior value
		assert.Equal(t, "Okay", updated.Description)
	})

	t.Run("only the reviewer may update", func(t *testing.T) {
		repo := &mockReviewRepository{
			getReviewByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Review, error) {
				return stored(), nil
			},
		}

		svc := NewReviewService(repo, &mockProfileRepository{})
		other := shared.Principal{UserID: uuid.New(), Role: shared.RoleCustomer}
		_, err := svc.UpdateReview(context.Background(), other, reviewID, model.UpdateReviewRequest{
			Description: strPtr("hijacked"),
		})
		assert.ErrorIs(t, err, model.ErrNotPermitted)
	})
}

func TestDeleteReview_OnlyReviewer(t *testing.T) {
	reviewer := shared.Principal{UserID: uuid.New(), Role: shared.RoleCustomer}
	reviewID := uuid.New()

	deleted := false
	repo := &mockReviewRepository{
		getReviewByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Review, error) {
			return &model.Review{ID: reviewID, ReviewerID: reviewer.UserID}, nil
		},
		deleteReviewFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewReviewService(repo, &mockProfileRepository{})

	other := shared.Principal{UserID: uuid.New(), Role: shared.RoleCustomer}
	err := svc.DeleteReview(context.Background(), other, reviewID)
	assert.ErrorIs(t, err, model.ErrNotPermitted)
	assert.False(t, deleted)

	err = svc.DeleteReview(context.Background(), reviewer, reviewID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
