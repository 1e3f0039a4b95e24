package service

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/order/model"
	"coderr-backend/internal/shared"
)

type Service interface {
	CreateOrder(ctx context.Context, principal shared.Principal, req model.CreateOrderRequest) (*model.OrderResponse, error)
	ListOrders(ctx context.Context, principal shared.Principal) ([]model.OrderResponse, error)
	GetOrder(ctx context.Context, principal shared.Principal, id uuid.UUID) (*model.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, principal shared.Principal, id uuid.UUID, req model.UpdateOrderStatusRequest) (*model.OrderResponse, error)
	DeleteOrder(ctx context.Context, principal shared.Principal, id uuid.UUID) error

	CountInProgressOrders(ctx context.Context, businessUserID uuid.UUID) (*model.OrderCountResponse, error)
	CountCompletedOrders(ctx context.Context, businessUserID uuid.UUID) (*model.CompletedOrderCountResponse, error)
}
