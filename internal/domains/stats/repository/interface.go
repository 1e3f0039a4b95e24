package repository

import (
	"context"

	"coderr-backend/internal/domains/stats/model"
)

type Repository interface {
	GetBaseInfo(ctx context.Context) (*model.BaseInfo, error)
}
