package container

import (
	"context"
	"fmt"

	"github.com/gdugdh24/godate-backend/internal/config"
	httpdelivery "github.com/gdugdh24/godate-backend/internal/delivery/http"
	"github.com/gdugdh24/godate-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/godate-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/godate-backend/internal/infrastructure/chadgpt"
	"github.com/gdugdh24/godate-backend/internal/infrastructure/database"
	"github.com/gdugdh24/godate-backend/internal/infrastructure/server"
	"github.com/gdugdh24/godate-backend/internal/repository/postgres"
	"github.com/gdugdh24/godate-backend/internal/usecase/aigen"
	"github.com/gdugdh24/godate-backend/internal/usecase/auth"
	"github.com/gdugdh24/godate-backend/internal/usecase/daily"
	"github.com/gdugdh24/godate-backend/internal/usecase/rating"
	"github.com/gdugdh24/godate-backend/internal/usecase/recommend"
	"github.com/gdugdh24/godate-backend/internal/usecase/route"
	"github.com/gdugdh24/godate-backend/internal/usecase/social"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional: without it the leaderboard reads straight from
	// the database.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("redis unavailable, leaderboard cache disabled")
		redisClient = nil
	}

	// Initialize AI client
	aiClient := chadgpt.NewClient(&cfg.AI)

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	dailyRepo := postgres.NewDailyRepository(db)
	routeRepo := postgres.NewRouteRepository(db)

	// Initialize use cases
	authUseCase := auth.NewUseCase(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
	)

	socialUseCase := social.NewUseCase(
		userRepo,
		requestRepo,
	)

	dailyUseCase := daily.NewUseCase(
		dailyRepo,
		userRepo,
	)

	routeUseCase := route.NewUseCase(routeRepo)

	ratingUseCase := rating.NewUseCase(
		userRepo,
		redisClient,
	)

	aigenUseCase := aigen.NewUseCase(aiClient)
	recommendUseCase := recommend.NewUseCase()

	// Seed the daily task catalog on first start
	if err := dailyUseCase.SeedDefaultTasks(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed daily tasks: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	userHandler := handler.NewUserHandler(socialUseCase, cfg.Storage.UploadsPath)
	messageHandler := handler.NewMessageHandler(socialUseCase)
	dailyHandler := handler.NewDailyHandler(dailyUseCase, ratingUseCase)
	routeHandler := handler.NewRouteHandler(routeUseCase, ratingUseCase)
	ratingHandler := handler.NewRatingHandler(ratingUseCase)
	aiHandler := handler.NewAIHandler(aigenUseCase, recommendUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		userHandler,
		messageHandler,
		dailyHandler,
		routeHandler,
		ratingHandler,
		aiHandler,
		authMiddleware,
		cfg.Storage.UploadsPath,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logrus.WithError(err).Error("failed to close redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
