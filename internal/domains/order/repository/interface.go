package repository

import (
	"context"

	"github.com/google/uuid"

	"coderr-backend/internal/domains/order/model"
)

type Repository interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// ListOrdersForUser returns all orders where the user is either the
	// customer or the business party, newest first.
	ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	CountOrdersByStatus(ctx context.Context, businessUserID uuid.UUID, status model.OrderStatus) (int, error)
}
