package service

import (
	"context"

	"coderr-backend/internal/domains/stats/model"
	"coderr-backend/internal/domains/stats/repository"
)

type statsService struct {
	repo repository.Repository
}

func NewStatsService(repo repository.Repository) Service {
	return &statsService{repo: repo}
}

func (s *statsService) GetBaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	return s.repo.GetBaseInfo(ctx)
}
