package service

import (
	"context"

	"coderr-backend/internal/domains/stats/model"
)

type Service interface {
	GetBaseInfo(ctx context.Context) (*model.BaseInfo, error)
}
