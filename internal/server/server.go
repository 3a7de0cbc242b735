package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/api"
	"github.com/forkful/backend/internal/cache"
	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
)

// Server is the HTTP front of the application.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New wires services and handlers into a runnable server. The Redis client
// is optional; without it the catalog cache and rate limits are disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *Server {
	router := NewRouter(cfg, db, redisClient, logger)

	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// NewRouter builds the gin engine with all routes registered. Split out so
// tests can drive the full HTTP surface without binding a port.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	recipeCache := cache.NewRecipeCache(redisClient)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, recipeCache)
	ratingService := service.NewRatingService(db, recipeCache)
	commentService := service.NewCommentService(db)
	favoriteService := service.NewFavoriteService(db)

	var ratingLimiter, createLimiter *middleware.RateLimiter
	if redisClient != nil {
		ratingLimiter = middleware.NewRatingRateLimiter(redisClient)
		createLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
	}

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewRecipeHandler(recipeService, authService, createLimiter).RegisterRoutes(v1)
	api.NewRatingHandler(ratingService, authService, ratingLimiter).RegisterRoutes(v1)
	api.NewCommentHandler(commentService, authService).RegisterRoutes(v1)
	api.NewProfileHandler(favoriteService, recipeService, authService).RegisterRoutes(v1)
	api.NewAdminHandler(recipeService, commentService, authService).RegisterRoutes(v1)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// Start blocks serving requests until the listener fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
