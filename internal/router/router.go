package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/verdantis/herbal-life/backend/internal/api"
	"github.com/verdantis/herbal-life/backend/internal/middleware"
	"github.com/verdantis/herbal-life/backend/internal/service"
)

// SetupRouter configures the application routes. Catalog reads are public;
// writes require a token and are rate limited when a limiter is provided.
func SetupRouter(
	authHandler *api.AuthHandler,
	plantHandler *api.PlantHandler,
	remedyHandler *api.RemedyHandler,
	authService *service.AuthService,
	writeLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	plants := v1.Group("/plants")
	{
		plants.GET("", plantHandler.ListPlants)
		plants.GET("/:id", plantHandler.GetPlant)
	}

	remedies := v1.Group("/remedies")
	{
		remedies.GET("", remedyHandler.ListRemedies)
		remedies.GET("/:id", remedyHandler.GetRemedy)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	protected.Use(writeLimiter.RateLimitMiddleware())
	{
		protected.POST("/plants", plantHandler.CreatePlant)
		protected.PUT("/plants/:id", plantHandler.UpdatePlant)
		protected.DELETE("/plants/:id", plantHandler.DeletePlant)
		protected.POST("/plants/:id/image", plantHandler.UploadPlantImage)

		protected.POST("/remedies", remedyHandler.CreateRemedy)
		protected.PUT("/remedies/:id", remedyHandler.UpdateRemedy)
		protected.DELETE("/remedies/:id", remedyHandler.DeleteRemedy)
	}

	return router
}
