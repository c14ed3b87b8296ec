package server

import (
	"errors"
	"net/http"
	"time"

	"gitfora-core/internal/auth"
	"gitfora-core/internal/handlers"
	"gitfora-core/internal/middleware"
	"gitfora-core/internal/service"
	"gitfora-core/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var (
	errMissingStore     = errors.New("store dependency required")
	errMissingAnalytics = errors.New("analytics dependency required")
	errMissingFetcher   = errors.New("github fetcher dependency required")
)

// Dependencies carries everything the router needs. Store and services are
// constructed once at startup and injected here; tests build isolated
// instances the same way.
type Dependencies struct {
	Store     *store.Store
	Analytics *service.Analytics
	Fetcher   handlers.GitHubFetcher
	// Tokens is optional; the auth routes are registered only when it is set.
	Tokens *auth.TokenIssuer
	Logger *zap.Logger
}

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Store == nil {
		return nil, errMissingStore
	}
	if deps.Analytics == nil {
		return nil, errMissingAnalytics
	}
	if deps.Fetcher == nil {
		return nil, errMissingFetcher
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	healthHandler := handlers.NewHealthHandler()
	dashboardHandler := handlers.NewDashboardHandler(deps.Analytics)
	technologyHandler := handlers.NewTechnologyHandler(deps.Analytics)
	repositoryHandler := handlers.NewRepositoryHandler(deps.Analytics, deps.Store, deps.Fetcher, logger)
	userHandler := handlers.NewUserHandler(deps.Analytics)
	githubHandler := handlers.NewGithubHandler(deps.Store, deps.Fetcher, logger)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/dashboard/metrics", dashboardHandler.Metrics)
		api.GET("/activity/weekly", dashboardHandler.WeeklyActivity)
		api.GET("/technologies", technologyHandler.List)
		api.GET("/repositories/trending", repositoryHandler.Trending)
		api.GET("/users/rising", userHandler.Rising)
		api.POST("/github/search", githubHandler.Search)
		api.GET("/github/users/:username/repos", githubHandler.UserRepositories)

		if deps.Tokens != nil {
			authHandler := handlers.NewAuthHandler(deps.Store, deps.Tokens)
			api.POST("/auth/register", authHandler.Register)
			api.POST("/auth/login", authHandler.Login)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}
