package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderr-backend/internal/domains/review/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const reviewColumns = `id, business_user_id, reviewer_id, rating, description, created_at, updated_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(
		&rv.ID, &rv.BusinessUserID, &rv.ReviewerID,
		&rv.Rating, &rv.Description, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *postgresRepository) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `
		INSERT INTO reviews (id, business_user_id, reviewer_id, rating, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	created, err := scanReview(r.pool.QueryRow(ctx, query,
		review.ID, review.BusinessUserID, review.ReviewerID, review.Rating, review.Description,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "uq_reviews_business_reviewer" {
			return nil, model.ErrDuplicateReview
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

var reviewOrderings = map[string]string{
	"updated_at":  "updated_at ASC",
	"-updated_at": "updated_at DESC",
	"rating":      "rating ASC",
	"-rating":     "rating DESC",
}

func (r *postgresRepository) ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.Review, error) {
	var (
		where []string
		args  []interface{}
	)

	if req.BusinessUserID != nil {
		args = append(args, *req.BusinessUserID)
		where = append(where, fmt.Sprintf("business_user_id = $%d", len(args)))
	}
	if req.ReviewerID != nil {
		args = append(args, *req.ReviewerID)
		where = append(where, fmt.Sprintf("reviewer_id = $%d", len(args)))
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	orderBy, ok := reviewOrderings[req.Ordering]
	if !ok {
		orderBy = reviewOrderings["-updated_at"]
	}
	query += " ORDER BY " + orderBy

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) UpdateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `
		UPDATE reviews
		SET rating = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reviewColumns

	updated, err := scanReview(r.pool.QueryRow(ctx, query, review.ID, review.Rating, review.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}
