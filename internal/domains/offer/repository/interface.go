package repository

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/offer/model"
)

type Repository interface {
	CreateOfferWithDetails(ctx context.Context, offer *model.Offer, details []model.OfferDetail) (*model.OfferRow, error)
	GetOfferRow(ctx context.Context, id uuid.UUID) (*model.OfferRow, error)
	ListOffers(ctx context.Context, req model.ListOffersRequest) ([]model.OfferRow, int, error)

	GetDetailsByOfferID(ctx context.Context, offerID uuid.UUID) ([]model.OfferDetail, error)
	GetDetailsByOfferIDs(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]model.OfferDetail, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error)

	UpdateOfferWithPlan(ctx context.Context, offer *model.Offer, plan *model.ReconcilePlan) (*model.OfferRow, error)
	DeleteOffer(ctx context.Context, id uuid.UUID) error
	DeleteDetail(ctx context.Context, id uuid.UUID) error
}
