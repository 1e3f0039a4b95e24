package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"coderr-backend/internal/domains/offer/model"
	"coderr-backend/pkg/cache"
	"coderr-backend/pkg/database"
	"coderr-backend/pkg/logger"
)

const offerCacheTTL = 5 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func offerKey(id uuid.UUID) string {
	return "offer:" + id.String()
}

func offerDetailsKey(id uuid.UUID) string {
	return "offer:" + id.String() + ":details"
}

func (r *postgresRepository) invalidate(ctx context.Context, offerID uuid.UUID) {
	if err := r.cache.Delete(ctx, offerKey(offerID), offerDetailsKey(offerID)); err != nil {
		logger.Warn("offer cache invalidation failed", err)
	}
}

// offerRowSelect joins offers with creator info and the per-offer minimum
// aggregates. Metrics are computed here on every read, never stored.
const offerRowSelect = `
	SELECT o.id, o.user_id, o.title, o.image, o.description, o.created_at, o.updated_at,
	       MIN(d.price) AS min_price,
	       MIN(d.delivery_time_in_days) AS min_delivery_time,
	       COALESCE(p.first_name, ''), COALESCE(p.last_name, ''), u.username
	FROM offers o
	JOIN users u ON u.id = o.user_id
	LEFT JOIN profiles p ON p.user_id = o.user_id
	LEFT JOIN offer_details d ON d.offer_id = o.id
`

const offerRowGroupBy = ` GROUP BY o.id, u.username, p.first_name, p.last_name`

func scanOfferRow(row pgx.Row) (*model.OfferRow, error) {
	var o model.OfferRow
	err := row.Scan(
		&o.ID, &o.UserID, &o.Title, &o.Image, &o.Description, &o.CreatedAt, &o.UpdatedAt,
		&o.MinPrice, &o.MinDeliveryTime,
		&o.User.FirstName, &o.User.LastName, &o.User.Username,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepository) CreateOfferWithDetails(ctx context.Context, offer *model.Offer, details []model.OfferDetail) (*model.OfferRow, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.OfferRow, error) {
		const insertOffer = `
			INSERT INTO offers (id, user_id, title, image, description)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err := tx.Exec(ctx, insertOffer,
			offer.ID, offer.UserID, offer.Title, offer.Image, offer.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("insert offer: %w", err)
		}

		for i := range details {
			if err := insertDetail(ctx, tx, &details[i]); err != nil {
				return nil, err
			}
		}

		return loadOfferRow(ctx, tx, offer.ID)
	})
}

const insertDetailSQL = `
	INSERT INTO offer_details (id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func insertDetail(ctx context.Context, tx pgx.Tx, d *model.OfferDetail) error {
	_, err := tx.Exec(ctx, insertDetailSQL,
		d.ID, d.OfferID, d.Title, d.Revisions, d.DeliveryTimeInDays,
		d.Price, pq.Array(d.Features), d.OfferType,
	)
	if err != nil {
		return fmt.Errorf("insert offer detail: %w", err)
	}
	return nil
}

func loadOfferRow(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.OfferRow, error) {
	query := offerRowSelect + ` WHERE o.id = $1` + offerRowGroupBy

	row, err := scanOfferRow(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOfferNotFound
		}
		return nil, fmt.Errorf("load offer: %w", err)
	}
	return row, nil
}

func (r *postgresRepository) GetOfferRow(ctx context.Context, id uuid.UUID) (*model.OfferRow, error) {
	var cached model.OfferRow
	if hit, err := r.cache.Get(ctx, offerKey(id), &cached); err == nil && hit {
		return &cached, nil
	}

	query := offerRowSelect + ` WHERE o.id = $1` + offerRowGroupBy

	row, err := scanOfferRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOfferNotFound
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}

	if err := r.cache.Set(ctx, offerKey(id), row, offerCacheTTL); err != nil {
		logger.Warn("offer cache set failed", err)
	}
	return row, nil
}

var offerOrderings = map[string]string{
	"updated_at":  "o.updated_at ASC",
	"-updated_at": "o.updated_at DESC",
	"min_price":   "min_price ASC NULLS LAST",
	"-min_price":  "min_price DESC NULLS LAST",
}

func (r *postgresRepository) ListOffers(ctx context.Context, req model.ListOffersRequest) ([]model.OfferRow, int, error) {
	var (
		where  []string
		having []string
		args   []interface{}
	)

	if req.CreatorID != nil {
		args = append(args, *req.CreatorID)
		where = append(where, fmt.Sprintf("o.user_id = $%d", len(args)))
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		where = append(where, fmt.Sprintf("(o.title ILIKE $%d OR o.description ILIKE $%d)", len(args), len(args)))
	}
	if req.MinPrice != nil {
		// matches offers with at least one tier priced at or above the
		// threshold, not only offers whose cheapest tier clears it
		args = append(args, *req.MinPrice)
		having = append(having, fmt.Sprintf("MAX(d.price) >= $%d", len(args)))
	}
	if req.MaxDeliveryTime != nil {
		args = append(args, *req.MaxDeliveryTime)
		having = append(having, fmt.Sprintf("MIN(d.delivery_time_in_days) <= $%d", len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}
	havingClause := ""
	if len(having) > 0 {
		havingClause = " HAVING " + strings.Join(having, " AND ")
	}

	countQuery := `
		SELECT COUNT(*) FROM (
			SELECT o.id
			FROM offers o
			LEFT JOIN offer_details d ON d.offer_id = o.id
		` + whereClause + ` GROUP BY o.id` + havingClause + `
		) sub
	`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count offers: %w", err)
	}

	orderBy, ok := offerOrderings[req.Ordering]
	if !ok {
		orderBy = offerOrderings["-updated_at"]
	}

	args = append(args, req.PageSize)
	limitArg := len(args)
	args = append(args, (req.Page-1)*req.PageSize)
	offsetArg := len(args)

	query := offerRowSelect + whereClause + offerRowGroupBy + havingClause +
		fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []model.OfferRow
	for rows.Next() {
		o, err := scanOfferRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list offers: %w", err)
	}

	return offers, total, nil
}

const detailColumns = `id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type, created_at, updated_at`

func scanDetail(row pgx.Row) (*model.OfferDetail, error) {
	var d model.OfferDetail
	err := row.Scan(
		&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays,
		&d.Price, pq.Array(&d.Features), &d.OfferType, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepository) GetDetailsByOfferID(ctx context.Context, offerID uuid.UUID) ([]model.OfferDetail, error) {
	var cached []model.OfferDetail
	if hit, err := r.cache.Get(ctx, offerDetailsKey(offerID), &cached); err == nil && hit {
		return cached, nil
	}

	const query = `
		SELECT ` + detailColumns + `
		FROM offer_details
		WHERE offer_id = $1
		ORDER BY offer_type
	`

	rows, err := r.pool.Query(ctx, query, offerID)
	if err != nil {
		return nil, fmt.Errorf("list offer details: %w", err)
	}
	defer rows.Close()

	details := []model.OfferDetail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer detail: %w", err)
		}
		details = append(details, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offer details: %w", err)
	}

	if err := r.cache.Set(ctx, offerDetailsKey(offerID), details, offerCacheTTL); err != nil {
		logger.Warn("offer details cache set failed", err)
	}
	return details, nil
}

func (r *postgresRepository) GetDetailsByOfferIDs(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]model.OfferDetail, error) {
	result := make(map[uuid.UUID][]model.OfferDetail, len(offerIDs))
	if len(offerIDs) == 0 {
		return result, nil
	}

	const query = `
		SELECT ` + detailColumns + `
		FROM offer_details
		WHERE offer_id = ANY($1)
		ORDER BY offer_id, offer_type
	`

	rows, err := r.pool.Query(ctx, query, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("list offer details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer detail: %w", err)
		}
		result[d.OfferID] = append(result[d.OfferID], *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offer details: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*model.OfferDetail, error) {
	const query = `SELECT ` + detailColumns + ` FROM offer_details WHERE id = $1`

	d, err := scanDetail(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDetailNotFound
		}
		return nil, fmt.Errorf("get offer detail: %w", err)
	}
	return d, nil
}

func (r *postgresRepository) UpdateOfferWithPlan(ctx context.Context, offer *model.Offer, plan *model.ReconcilePlan) (*model.OfferRow, error) {
	row, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.OfferRow, error) {
		const updateOffer = `
			UPDATE offers
			SET title = $2, image = $3, description = $4, updated_at = NOW()
			WHERE id = $1
		`
		tag, err := tx.Exec(ctx, updateOffer, offer.ID, offer.Title, offer.Image, offer.Description)
		if err != nil {
			return nil, fmt.Errorf("update offer: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, model.ErrOfferNotFound
		}

		if plan != nil {
			if err := applyPlan(ctx, tx, offer.ID, plan); err != nil {
				return nil, err
			}
		}

		return loadOfferRow(ctx, tx, offer.ID)
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, offer.ID)
	return row, nil
}

const updateDetailSQL = `
	UPDATE offer_details
	SET title = $3, revisions = $4, delivery_time_in_days = $5,
	    price = $6, features = $7, offer_type = $8, updated_at = NOW()
	WHERE id = $1 AND offer_id = $2
`

const deleteDetailsSQL = `DELETE FROM offer_details WHERE offer_id = $1 AND id = ANY($2)`

type planStatement struct {
	sql  string
	args []interface{}
}

// planStatements lays out a plan's effects as deletes, then updates, then
// inserts. Deletes must run first: an insert that takes over a removed
// row's tier would otherwise collide with that row on the (offer_id,
// offer_type) unique constraint. A tier swap between two retained rows
// still duplicates a tier between the two updates; the constraint is
// deferred to commit to cover that window.
func planStatements(offerID uuid.UUID, plan *model.ReconcilePlan) []planStatement {
	stmts := make([]planStatement, 0, len(plan.Updates)+len(plan.Inserts)+1)

	if len(plan.DeleteIDs) > 0 {
		stmts = append(stmts, planStatement{deleteDetailsSQL, []interface{}{offerID, plan.DeleteIDs}})
	}
	for i := range plan.Updates {
		d := &plan.Updates[i]
		stmts = append(stmts, planStatement{updateDetailSQL, []interface{}{
			d.ID, offerID, d.Title, d.Revisions, d.DeliveryTimeInDays,
			d.Price, pq.Array(d.Features), d.OfferType,
		}})
	}
	for i := range plan.Inserts {
		d := &plan.Inserts[i]
		stmts = append(stmts, planStatement{insertDetailSQL, []interface{}{
			d.ID, d.OfferID, d.Title, d.Revisions, d.DeliveryTimeInDays,
			d.Price, pq.Array(d.Features), d.OfferType,
		}})
	}
	return stmts
}

func applyPlan(ctx context.Context, tx pgx.Tx, offerID uuid.UUID, plan *model.ReconcilePlan) error {
	for _, st := range planStatements(offerID, plan) {
		if _, err := tx.Exec(ctx, st.sql, st.args...); err != nil {
			return fmt.Errorf("apply offer detail plan: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	var offerID uuid.UUID
	err := r.pool.QueryRow(ctx,
		`DELETE FROM offer_details WHERE id = $1 RETURNING offer_id`, id,
	).Scan(&offerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrDetailNotFound
		}
		return fmt.Errorf("delete offer detail: %w", err)
	}

	r.invalidate(ctx, offerID)
	return nil
}
