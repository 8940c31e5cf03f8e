package routes

import (
	userControllers "github.com/RemowRamms/Flower-catalog/controllers/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupLegacyRoutes keeps the two hand-written endpoints the original
// Express app exposed alongside its generated REST layer.
func SetupLegacyRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/api", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Hello from the Flower Catalog API"})
	})

	r.GET("/api/users", userControllers.GetLegacyUsers(db))
}
