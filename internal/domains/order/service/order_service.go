package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	offermodel "coderr-backend/internal/domains/offer/model"
	offerrepo "coderr-backend/internal/domains/offer/repository"
	"coderr-backend/internal/domains/order/model"
	"coderr-backend/internal/domains/order/repository"
	profilemodel "coderr-backend/internal/domains/profile/model"
	profilerepo "coderr-backend/internal/domains/profile/repository"
	"coderr-backend/internal/shared"
	"coderr-backend/pkg/logger"
)

type orderService struct {
	repo        repository.Repository
	offerRepo   offerrepo.Repository
	profileRepo profilerepo.Repository
}

func NewOrderService(repo repository.Repository, offerRepo offerrepo.Repository, profileRepo profilerepo.Repository) Service {
	return &orderService{
		repo:        repo,
		offerRepo:   offerRepo,
		profileRepo: profileRepo,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, principal shared.Principal, req model.CreateOrderRequest) (*model.OrderResponse, error) {
	if !principal.IsCustomer() {
		return nil, model.ErrCustomerOnly
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	detail, err := s.offerRepo.GetDetailByID(ctx, *req.OfferDetailID)
	if err != nil {
		if errors.Is(err, offermodel.ErrDetailNotFound) {
			return nil, model.ErrOfferDetailNotFound
		}
		return nil, err
	}

	offer, err := s.offerRepo.GetOfferRow(ctx, detail.OfferID)
	if err != nil {
		return nil, err
	}

	// Snapshot the detail by value so later edits never change the order.
	detailID := detail.ID
	order := &model.Order{
		ID:                 uuid.New(),
		CustomerUserID:     principal.UserID,
		BusinessUserID:     offer.UserID,
		OfferDetailID:      &detailID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           append(pq.StringArray{}, detail.Features...),
		OfferType:          detail.OfferType.String(),
		Status:             model.StatusInProgress,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	logger.Info("order created", map[string]interface{}{
		"order_id":      created.ID,
		"customer_user": created.CustomerUserID,
		"business_user": created.BusinessUserID,
	})

	resp := created.ToResponse()
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, principal shared.Principal) ([]model.OrderResponse, error) {
	orders, err := s.repo.ListOrdersForUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, orders[i].ToResponse())
	}
	return result, nil
}

func (s *orderService) GetOrder(ctx context.Context, principal shared.Principal, id uuid.UUID) (*model.OrderResponse, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.CustomerUserID != principal.UserID && order.BusinessUserID != principal.UserID && !principal.IsStaff() {
		return nil, model.ErrNotPermitted
	}

	resp := order.ToResponse()
	return &resp, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateOrderStatusRequest) (*model.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	next := model.OrderStatus(*req.Status)
	if !next.IsValid() || next == model.StatusInProgress {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.BusinessUserID != principal.UserID {
		return nil, model.ErrNotPermitted
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, model.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	logger.Info("order status updated", map[string]interface{}{
		"order_id": id,
		"status":   next,
	})

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, principal shared.Principal, id uuid.UUID) error {
	if !principal.IsStaff() {
		return model.ErrNotPermitted
	}

	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}

	logger.Info("order deleted", map[string]interface{}{
		"order_id":   id,
		"deleted_by": principal.UserID,
	})
	return nil
}

func (s *orderService) CountInProgressOrders(ctx context.Context, businessUserID uuid.UUID) (*model.OrderCountResponse, error) {
	if err := s.requireBusinessUser(ctx, businessUserID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountOrdersByStatus(ctx, businessUserID, model.StatusInProgress)
	if err != nil {
		return nil, err
	}
	return &model.OrderCountResponse{OrderCount: count}, nil
}

func (s *orderService) CountCompletedOrders(ctx context.Context, businessUserID uuid.UUID) (*model.CompletedOrderCountResponse, error) {
	if err := s.requireBusinessUser(ctx, businessUserID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountOrdersByStatus(ctx, businessUserID, model.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return &model.CompletedOrderCountResponse{CompletedOrderCount: count}, nil
}

func (s *orderService) requireBusinessUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.profileRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profilemodel.ErrUserNotFound) {
			return model.ErrBusinessUserNotFound
		}
		return err
	}
	if user.Type != shared.RoleBusiness {
		return model.ErrBusinessUserNotFound
	}
	return nil
}
