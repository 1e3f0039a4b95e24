package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coderr-backend/internal/domains/offer/model"
	"coderr-backend/internal/shared"
)

type mockRepository struct {
	createOfferWithDetailsFn func(ctx context.Context, offer *model.Offer, details []model.OfferDetail) (*model.OfferRow, error)
	getOfferRowFn            func(ctx context.Context, id uuid.UUID) (*model.OfferRow, error)
	listOffersFn             func(ctx context.Context, req model.ListOffersRequest) ([]model.OfferRow, int, error)
	getDetailsByOfferIDFn    func(ctx context.Context, offerID uuid.UUID) ([]model.OfferDetail, error)
	getDetailsByOfferIDsFn   func(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]model.OfferDetail, error)
	getDetailByIDFn          func(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error)
	updateOfferWithPlanFn    func(ctx context.Context, offer *model.Offer, plan *model.ReconcilePlan) (*model.OfferRow, error)
	deleteOfferFn            func(ctx context.Context, id uuid.UUID) error
	deleteDetailFn           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepository) CreateOfferWithDetails(ctx context.Context, offer *model.Offer, details []model.OfferDetail) (*model.OfferRow, error) {
	return m.createOfferWithDetailsFn(ctx, offer, details)
}

func (m *mockRepository) GetOfferRow(ctx context.Context, id uuid.UUID) (*model.OfferRow, error) {
	return m.getOfferRowFn(ctx, id)
}

func (m *mockRepository) ListOffers(ctx context.Context, req model.ListOffersRequest) ([]model.OfferRow, int, error) {
	return m.listOffersFn(ctx, req)
}

func (m *mockRepository) GetDetailsByOfferID(ctx context.Context, offerID uuid.UUID) ([]model.OfferDetail, error) {
	return m.getDetailsByOfferIDFn(ctx, offerID)
}

func (m *mockRepository) GetDetailsByOfferIDs(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]model.OfferDetail, error) {
	return m.getDetailsByOfferIDsFn(ctx, offerIDs)
}

func (m *mockRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error) {
	return m.getDetailByIDFn(ctx, id)
}

func (m *mockRepository) UpdateOfferWithPlan(ctx context.Context, offer *model.Offer, plan *model.ReconcilePlan) (*model.OfferRow, error) {
	return m.updateOfferWithPlanFn(ctx, offer, plan)
}

func (m *mockRepository) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return m.deleteOfferFn(ctx, id)
}

func (m *mockRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	return m.deleteDetailFn(ctx, id)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func businessPrincipal() shared.Principal {
	return shared.Principal{UserID: uuid.New(), Username: "biz", Role: shared.RoleBusiness}
}

func validCreateRequest() model.CreateOfferRequest {
	price := decimal.RequireFromString("100")
	return model.CreateOfferRequest{
		Title:       "Logo Design",
		Description: "Professional logo design",
		Details: []model.DetailPayload{
			{
				Title:              strPtr("Basic"),
				Revisions:          intPtr(2),
				DeliveryTimeInDays: intPtr(5),
				Price:              &price,
				OfferType:          strPtr("basic"),
			},
		},
	}
}

func TestCreateOffer(t *testing.T) {
	t.Run("business user creates offer with details", func(t *testing.T) {
		principal := businessPrincipal()

		var gotDetails []model.OfferDetail
		repo := &mockRepository{
			createOfferWithDetailsFn: func(ctx context.Context, offer *model.Offer, details []model.OfferDetail) (*model.OfferRow, error) {
				gotDetails = details
				return &model.OfferRow{Offer: *offer}, nil
			},
		}

		svc := NewOfferService(repo)
		resp, err := svc.CreateOffer(context.Background(), principal, validCreateRequest())
		require.NoError(t, err)

		assert.Equal(t, principal.UserID, resp.UserID)
		require.Len(t, gotDetails, 1)
		assert.Equal(t, model.OfferTypeBasic, gotDetails[0].OfferType)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, gotDetails[0].ID, resp.Details[0].ID)
	})

	t.Run("customer user is rejected", func(t *testing.T) {
		principal := shared.Principal{UserID: uuid.New(), Role: shared.RoleCustomer}

		svc := NewOfferService(&mockRepository{})
		_, err := svc.CreateOffer(context.Background(), principal, validCreateRequest())
		assert.ErrorIs(t, err, model.ErrBusinessOnly)
	})

	t.Run("duplicate tiers are rejected before any write", func(t *testing.T) {
		principal := businessPrincipal()
		req := validCreateRequest()
		req.Details = append(req.Details, req.Details[0])

		repoCalled := false
		repo := &mockRepository{
			createOfferWithDetailsFn: func(ctx context.Context, offer *model.Offer, details []model.OfferDetail) (*model.OfferRow, error) {
				repoCalled = true
				return nil, nil
			},
		}

		svc := NewOfferService(repo)
		_, err := svc.CreateOffer(context.Background(), principal, req)
		assert.ErrorIs(t, err, model.ErrDuplicateOfferType)
		assert.False(t, repoCalled)
	})
}

func TestUpdateOffer(t *testing.T) {
	offerID := uuid.New()
	owner := businessPrincipal()

	existing := []model.OfferDetail{
		{ID: uuid.New(), OfferID: offerID, Title: "Basic", DeliveryTimeInDays: 5, OfferType: model.OfferTypeBasic},
	}

	row := func() *model.OfferRow {
		return &model.OfferRow{Offer: model.Offer{ID: offerID, UserID: owner.UserID, Title: "Old title"}}
	}

	t.Run("non owner is rejected", func(t *testing.T) {
		repo := &mockRepository{
			getOfferRowFn: func(ctx context.Context, id uuid.UUID) (*model.OfferRow, error) {
				return row(), nil
			},
		}

		svc := NewOfferService(repo)
		other := shared.Principal{UserID: uuid.New(), Role: shared.RoleBusiness}
		_, err := svc.UpdateOffer(context.Background(), other, offerID, model.UpdateOfferRequest{Title: strPtr("New")})
		assert.ErrorIs(t, err, model.ErrNotPermitted)
	})

	t.Run("body without details leaves the detail set untouched", func(t *testing.T) {
		var gotPlan *model.ReconcilePlan
		planSeen := false
		repo := &mockRepository{
			getOfferRowFn: func(ctx context.Context, id uuid.UUID) (*model.OfferRow, error) {
				return row(), nil
			},
			getDetailsByOfferIDFn: func(ctx context.Context, id uuid.UUID) ([]model.OfferDetail, error) {
				return existing, nil
			},
			updateOfferWithPlanFn: func(ctx context.Context, offer *model.Offer, plan *model.ReconcilePlan) (*model.OfferRow, error) {
				gotPlan = plan
				planSeen = true
				return &model.OfferRow{Offer: *offer}, nil
			},
		}

		svc := NewOfferService(repo)
		resp, err := svc.UpdateOffer(context.Background(), owner, offerID, model.UpdateOfferRequest{Title: strPtr("New title")})
		require.NoError(t, err)

		assert.True(t, planSeen)
		assert.Nil(t, gotPlan)
		assert.Equal(t, "New title", resp.Title)
	})

	t.Run("details are reconciled against the stored set", func(t *testing.T) {
		var gotPlan *model.ReconcilePlan
		repo := &mockRepository{
			getOfferRowFn: func(ctx context.Context, id uuid.UUID) (*model.OfferRow, error) {
				return row(), nil
			},
			getDetailsByOfferIDFn: func(ctx context.Context, id uuid.UUID) ([]model.OfferDetail, error) {
				return existing, nil
			},
			updateOfferWithPlanFn: func(ctx context.Context, offer *model.Offer, plan *model.ReconcilePlan) (*model.OfferRow, error) {
				gotPlan = plan
				return &model.OfferRow{Offer: *offer}, nil
			},
		}

		svc := NewOfferService(repo)
		detailID := existing[0].ID
		req := model.UpdateOfferRequest{
			Details: []model.DetailPayload{
				{ID: &detailID, Title: strPtr("Basic v2")},
			},
		}

		_, err := svc.UpdateOffer(context.Background(), owner, offerID, req)
		require.NoError(t, err)

		require.NotNil(t, gotPlan)
		require.Len(t, gotPlan.Updates, 1)
		assert.Equal(t, "Basic v2", gotPlan.Updates[0].Title)
	})
}

func TestDeleteDetail_LastDetailRefused(t *testing.T) {
	offerID := uuid.New()
	owner := businessPrincipal()
	detail := model.OfferDetail{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypeBasic, DeliveryTimeInDays: 3}

	repo := &mockRepository{
		getDetailByIDFn: func(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error) {
			return &detail, nil
		},
		getOfferRowFn: func(ctx context.Context, id uuid.UUID) (*model.OfferRow, error) {
			return &model.OfferRow{Offer: model.Offer{ID: offerID, UserID: owner.UserID}}, nil
		},
		getDetailsByOfferIDFn: func(ctx context.Context, id uuid.UUID) ([]model.OfferDetail, error) {
			return []model.OfferDetail{detail}, nil
		},
	}

	svc := NewOfferService(repo)
	err := svc.DeleteDetail(context.Background(), owner, detail.ID)
	assert.ErrorIs(t, err, model.ErrNoDetails)
}
