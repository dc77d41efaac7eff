package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gastronomia/backend/internal/middleware"
	"github.com/gastronomia/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Gastronomia API is running",
	})
}

// RegisterRoutes wires every handler under /api/v1. redisClient and
// imageService may be nil; the matching features are then disabled.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService *service.AuthService, imageService service.IImageService, redisClient *redis.Client) {
	router.GET("/health", HealthCheck)

	var creationLimiter, modificationLimiter *middleware.RateLimiter
	if redisClient != nil {
		creationLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		modificationLimiter = middleware.NewRecipeModificationRateLimiter(redisClient)
	}

	recipeService := service.NewRecipeService(db)

	authHandler := NewAuthHandler(authService)
	recipeHandler := NewRecipeHandler(recipeService, authService, creationLimiter, modificationLimiter)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)

	if imageService != nil {
		imageHandler := NewImageHandler(recipeService, imageService, authService)
		imageHandler.RegisterRoutes(v1)
	}
}
