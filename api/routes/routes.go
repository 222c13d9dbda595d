package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pointgrid/point-backend/internal/config"
	"github.com/pointgrid/point-backend/internal/handlers"
	"github.com/pointgrid/point-backend/internal/middleware"
)

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, pointHandler *handlers.PointHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Point routes
	point := router.Group("/point")
	{
		point.GET("/:id", pointHandler.GetPoint)
		point.GET("/:id/histories", pointHandler.GetHistories)
		point.PATCH("/:id/charge", pointHandler.Charge)
		point.PATCH("/:id/use", pointHandler.Use)
	}

	return router
}
