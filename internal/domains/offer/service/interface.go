package service

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/offer/model"
	"coderr-backend/internal/shared"
)

type Service interface {
	CreateOffer(ctx context.Context, principal shared.Principal, req model.CreateOfferRequest) (*model.OfferResponse, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*model.OfferResponse, error)
	ListOffers(ctx context.Context, req model.ListOffersRequest) ([]model.OfferResponse, int, error)
	UpdateOffer(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateOfferRequest) (*model.OfferResponse, error)
	DeleteOffer(ctx context.Context, principal shared.Principal, id uuid.UUID) error

	GetDetail(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error)
	DeleteDetail(ctx context.Context, principal shared.Principal, id uuid.UUID) error
}
