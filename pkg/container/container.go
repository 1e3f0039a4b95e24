package container

import (
	"context"
	"fmt"
	"time"

	"coderr-backend/internal/config"
	offerHandler "coderr-backend/internal/domains/offer/handler"
	offerRepo "coderr-backend/internal/domains/offer/repository"
	offerService "coderr-backend/internal/domains/offer/service"
	orderHandler "coderr-backend/internal/domains/order/handler"
	orderRepo "coderr-backend/internal/domains/order/repository"
	orderService "coderr-backend/internal/domains/order/service"
	profileHandler "coderr-backend/internal/domains/profile/handler"
	profileRepo "coderr-backend/internal/domains/profile/repository"
	profileService "coderr-backend/internal/domains/profile/service"
	reviewHandler "coderr-backend/internal/domains/review/handler"
	reviewRepo "coderr-backend/internal/domains/review/repository"
	reviewService "coderr-backend/internal/domains/review/service"
	statsHandler "coderr-backend/internal/domains/stats/handler"
	statsRepo "coderr-backend/internal/domains/stats/repository"
	statsService "coderr-backend/internal/domains/stats/service"
	infraCache "coderr-backend/internal/infrastructure/cache"
	"coderr-backend/internal/infrastructure/database"
	"coderr-backend/pkg/cache"
	"coderr-backend/pkg/jwt"
	"coderr-backend/pkg/logger"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	ProfileRepo profileRepo.Repository
	OfferRepo   offerRepo.Repository
	OrderRepo   orderRepo.Repository
	ReviewRepo  reviewRepo.Repository
	StatsRepo   statsRepo.Repository

	ProfileService profileService.Service
	OfferService   offerService.Service
	OrderService   orderService.Service
	ReviewService  reviewService.Service
	StatsService   statsService.Service

	ProfileHandler *profileHandler.ProfileHandler
	OfferHandler   *offerHandler.OfferHandler
	OrderHandler   *orderHandler.OrderHandler
	ReviewHandler  *reviewHandler.ReviewHandler
	StatsHandler   *statsHandler.StatsHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.DB = db
	logger.Info("database connected", map[string]interface{}{
		"host": dbConfig.Host,
		"name": dbConfig.DBName,
	})

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	c.redis = redisCache
	c.Cache = redisCache
	logger.Info("redis connected", map[string]interface{}{"host": cfg.Redis.Host})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	c.ProfileRepo = profileRepo.NewPostgresRepository(db.Pool)
	c.OfferRepo = offerRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.OrderRepo = orderRepo.NewPostgresRepository(db.Pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(db.Pool)
	c.StatsRepo = statsRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, c.JWTManager)
	c.OfferService = offerService.NewOfferService(c.OfferRepo)
	c.OrderService = orderService.NewOrderService(c.OrderRepo, c.OfferRepo, c.ProfileRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.ProfileRepo)
	c.StatsService = statsService.NewStatsService(c.StatsRepo)

	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.OfferHandler = offerHandler.NewOfferHandler(c.OfferService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.StatsHandler = statsHandler.NewStatsHandler(c.StatsService)

	return c, nil
}

// Cleanup closes infrastructure connections in reverse order of creation.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

// HealthCheck reports the state of the backing services.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Cache.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
