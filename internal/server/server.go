package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/config"
	"github.com/verdantis/herbal-life/backend/internal/api"
	"github.com/verdantis/herbal-life/backend/internal/middleware"
	"github.com/verdantis/herbal-life/backend/internal/router"
	"github.com/verdantis/herbal-life/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires services and handlers into a server. redisClient and s3Config
// may be nil; caching, rate limiting and image upload degrade gracefully.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	plantService := service.NewPlantService(db)
	remedyService := service.NewRemedyService(db)
	cache := service.NewCatalogCache(redisClient)

	var imageService *service.ImageService
	if s3Config != nil {
		imageService = service.NewImageService(s3Config)
	}

	authHandler := api.NewAuthHandler(authService)
	plantHandler := api.NewPlantHandler(plantService, imageService, cache)
	remedyHandler := api.NewRemedyHandler(remedyService, cache)
	writeLimiter := middleware.NewCatalogWriteRateLimiter(redisClient)

	engine := router.SetupRouter(authHandler, plantHandler, remedyHandler, authService, writeLimiter)

	return &Server{
		engine: engine,
		cfg:    cfg,
	}
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
