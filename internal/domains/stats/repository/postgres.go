package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"coderr-backend/internal/domains/stats/model"
	"coderr-backend/pkg/cache"
	"coderr-backend/pkg/logger"
)

const (
	baseInfoCacheKey = "stats:base-info"
	baseInfoCacheTTL = 30 * time.Second
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

// GetBaseInfo collects all four platform counters in one statement so they
// describe a single consistent point in time.
func (r *postgresRepository) GetBaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	var cached model.BaseInfo
	if hit, err := r.cache.Get(ctx, baseInfoCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	const query = `
		SELECT
			(SELECT COUNT(*) FROM reviews),
			(SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0) FROM reviews),
			(SELECT COUNT(*) FROM users WHERE type = 'business'),
			(SELECT COUNT(*) FROM offers)
	`

	var info model.BaseInfo
	err := r.pool.QueryRow(ctx, query).Scan(
		&info.ReviewCount, &info.AverageRating,
		&info.BusinessProfileCount, &info.OfferCount,
	)
	if err != nil {
		return nil, fmt.Errorf("get base info: %w", err)
	}

	if err := r.cache.Set(ctx, baseInfoCacheKey, &info, baseInfoCacheTTL); err != nil {
		logger.Warn("base info cache set failed", err)
	}
	return &info, nil
}
