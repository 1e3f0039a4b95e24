package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coderr-backend/internal/domains/review/model"
	"coderr-backend/internal/shared"
	"coderr-backend/internal/shared/middleware"
)

type mockService struct {
	createReviewFn func(ctx context.Context, principal shared.Principal, req model.CreateReviewRequest) (*model.Review, error)
	listReviewsFn  func(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error)
	getReviewFn    func(ctx context.Context, id uuid.UUID) (*model.Review, error)
	updateReviewFn func(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)
	deleteReviewFn func(ctx context.Context, principal shared.Principal, id uuid.UUID) error
}

func (m *mockService) CreateReview(ctx context.Context, principal shared.Principal, req model.CreateReviewRequest) (*model.Review, error) {
	return m.createReviewFn(ctx, principal, req)
}

func (m *mockService) ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error) {
	return m.listReviewsFn(ctx, req)
}

func (m *mockService) GetReview(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	return m.getReviewFn(ctx, id)
}

func (m *mockService) UpdateReview(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
	return m.updateReviewFn(ctx, principal, id, req)
}

func (m *mockService) DeleteReview(ctx context.Context, principal shared.Principal, id uuid.UUID) error {
	return m.deleteReviewFn(ctx, principal, id)
}

func patchReview(t *testing.T, svc *mockService, reviewID string, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, shared.Principal{
			UserID: uuid.New(),
			Role:   shared.RoleCustomer,
		})
	})
	NewReviewHandler(svc).RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodPatch, "/reviews/"+reviewID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateReview_RejectsUnexpectedFields(t *testing.T) {
	serviceCalled := false
	svc := &mockService{
		updateReviewFn: func(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
			serviceCalled = true
			return &model.Review{ID: id}, nil
		},
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "rating and description are allowed",
			body:       `{"rating": 5, "description": "Great"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "business_user cannot be moved",
			body:       `{"rating": 5, "business_user": "` + uuid.NewString() + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "reviewer cannot be reassigned",
			body:       `{"reviewer": "` + uuid.NewString() + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown keys are rejected wholesale",
			body:       `{"rating": 5, "anything": true}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceCalled = false
			w := patchReview(t, svc, uuid.NewString(), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				// nothing may be applied when the body carries a stray key
				assert.False(t, serviceCalled)
			}
		})
	}
}

func TestUpdateReview_InvalidBody(t *testing.T) {
	svc := &mockService{
		updateReviewFn: func(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
			require.Fail(t, "service must not be called")
			return nil, nil
		},
	}

	w := patchReview(t, svc, uuid.NewString(), `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = patchReview(t, svc, "not-a-uuid", `{"rating": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
