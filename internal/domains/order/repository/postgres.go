package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"coderr-backend/internal/domains/order/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const orderColumns = `
	id, customer_user_id, business_user_id, offer_detail_id,
	title, revisions, delivery_time_in_days, price, features, offer_type,
	status, created_at, updated_at
`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.OfferDetailID,
		&o.Title, &o.Revisions, &o.DeliveryTimeInDays, &o.Price,
		pq.Array(&o.Features), &o.OfferType,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepository) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `
		INSERT INTO orders (
			id, customer_user_id, business_user_id, offer_detail_id,
			title, revisions, delivery_time_in_days, price, features, offer_type, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	created, err := scanOrder(r.pool.QueryRow(ctx, query,
		order.ID, order.CustomerUserID, order.BusinessUserID, order.OfferDetailID,
		order.Title, order.Revisions, order.DeliveryTimeInDays, order.Price,
		pq.Array(order.Features), order.OfferType, order.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *postgresRepository) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	const query = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_user_id = $1 OR business_user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *postgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	const query = `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}

func (r *postgresRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepository) CountOrdersByStatus(ctx context.Context, businessUserID uuid.UUID, status model.OrderStatus) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE business_user_id = $1 AND status = $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, businessUserID, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
