package service

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/offer/model"
	"coderr-backend/internal/domains/offer/repository"
	"coderr-backend/internal/shared"
	"coderr-backend/pkg/logger"
)

type offerService struct {
	repo repository.Repository
}

func NewOfferService(repo repository.Repository) Service {
	return &offerService{repo: repo}
}

func (s *offerService) CreateOffer(ctx context.Context, principal shared.Principal, req model.CreateOfferRequest) (*model.OfferResponse, error) {
	if !principal.IsBusiness() {
		return nil, model.ErrBusinessOnly
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	offer := &model.Offer{
		ID:          uuid.New(),
		UserID:      principal.UserID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}

	details, err := model.DetailsFromPayloads(offer.ID, req.Details)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.CreateOfferWithDetails(ctx, offer, details)
	if err != nil {
		return nil, err
	}

	logger.Info("offer created", map[string]interface{}{
		"offer_id": offer.ID,
		"user_id":  principal.UserID,
		"details":  len(details),
	})

	resp := row.ToResponse(details)
	return &resp, nil
}

func (s *offerService) GetOffer(ctx context.Context, id uuid.UUID) (*model.OfferResponse, error) {
	row, err := s.repo.GetOfferRow(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetailsByOfferID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := row.ToResponse(details)
	return &resp, nil
}

func (s *offerService) ListOffers(ctx context.Context, req model.ListOffersRequest) ([]model.OfferResponse, int, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	rows, total, err := s.repo.ListOffers(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	offerIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		offerIDs = append(offerIDs, rows[i].ID)
	}

	detailsByOffer, err := s.repo.GetDetailsByOfferIDs(ctx, offerIDs)
	if err != nil {
		return nil, 0, err
	}

	result := make([]model.OfferResponse, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToResponse(detailsByOffer[rows[i].ID]))
	}
	return result, total, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateOfferRequest) (*model.OfferResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetOfferRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != principal.UserID {
		return nil, model.ErrNotPermitted
	}

	// Partial update: unspecified fields keep their prior values.
	offer := row.Offer
	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Image != nil {
		offer.Image = req.Image
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}

	var plan *model.ReconcilePlan
	if req.Details != nil {
		existing, err := s.repo.GetDetailsByOfferID(ctx, id)
		if err != nil {
			return nil, err
		}
		plan, err = model.BuildReconcilePlan(id, existing, req.Details)
		if err != nil {
			return nil, err
		}
		if len(plan.IgnoredIDs) > 0 {
			logger.Debug("offer update ignored unknown detail ids", map[string]interface{}{
				"offer_id":    id,
				"ignored_ids": plan.IgnoredIDs,
			})
		}
	}

	updated, err := s.repo.UpdateOfferWithPlan(ctx, &offer, plan)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetailsByOfferID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse(details)
	return &resp, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, principal shared.Principal, id uuid.UUID) error {
	row, err := s.repo.GetOfferRow(ctx, id)
	if err != nil {
		return err
	}
	if row.UserID != principal.UserID {
		return model.ErrNotPermitted
	}

	if err := s.repo.DeleteOffer(ctx, id); err != nil {
		return err
	}

	logger.Info("offer deleted", map[string]interface{}{
		"offer_id": id,
		"user_id":  principal.UserID,
	})
	return nil
}

func (s *offerService) GetDetail(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error) {
	return s.repo.GetDetailByID(ctx, id)
}

func (s *offerService) DeleteDetail(ctx context.Context, principal shared.Principal, id uuid.UUID) error {
	detail, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return err
	}

	row, err := s.repo.GetOfferRow(ctx, detail.OfferID)
	if err != nil {
		return err
	}
	if row.UserID != principal.UserID {
		return model.ErrNotPermitted
	}

	siblings, err := s.repo.GetDetailsByOfferID(ctx, detail.OfferID)
	if err != nil {
		return err
	}
	if len(siblings) <= 1 {
		return model.ErrNoDetails
	}

	return s.repo.DeleteDetail(ctx, id)
}
