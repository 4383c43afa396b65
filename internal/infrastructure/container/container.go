package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/prismapp/prism-backend/internal/config"
	"github.com/prismapp/prism-backend/internal/delivery/http"
	"github.com/prismapp/prism-backend/internal/delivery/http/handler"
	"github.com/prismapp/prism-backend/internal/delivery/http/middleware"
	"github.com/prismapp/prism-backend/internal/infrastructure/database"
	"github.com/prismapp/prism-backend/internal/infrastructure/server"
	"github.com/prismapp/prism-backend/internal/repository/postgres"
	redisrepo "github.com/prismapp/prism-backend/internal/repository/redis"
	"github.com/prismapp/prism-backend/internal/usecase/auth"
	"github.com/prismapp/prism-backend/internal/usecase/chat"
	"github.com/prismapp/prism-backend/internal/usecase/discovery"
	"github.com/prismapp/prism-backend/internal/usecase/profile"
	"github.com/prismapp/prism-backend/internal/usecase/reaction"
	"github.com/redis/go-redis/v9"
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

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	conversationRepo := postgres.NewConversationRepository(db)
	reactionRepo := redisrepo.NewReactionRepository(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessExpiryMin,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		userRepo,
	)

	discoveryUseCase := discovery.NewDiscoveryUseCase(
		profileRepo,
		reactionRepo,
	)

	reactionUseCase := reaction.NewReactionUseCase(
		reactionRepo,
		profileRepo,
	)

	chatUseCase := chat.NewChatUseCase(
		conversationRepo,
		profileRepo,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	reactionHandler := handler.NewReactionHandler(reactionUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		discoveryHandler,
		reactionHandler,
		chatHandler,
		authMiddleware,
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
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
