package routes

import (
	"github.com/RemowRamms/Flower-catalog/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Catalog: categories + products
	SetupCatalogRoutes(r, db, cfg)

	// Users (admin-protected)
	SetupUserRoutes(r, db, cfg)

	// Orders + payments
	SetupOrderRoutes(r, db, cfg)

	// Legacy endpoints kept from the original Express app
	SetupLegacyRoutes(r, db)

	// API documentation
	SetupDocsRoutes(r)

	// Root index
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":       "Flower Catalog API",
			"documentation": "/api-docs",
			"api":           "/api/v2",
		})
	})
}
