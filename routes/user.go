package routes

import (
	"github.com/RemowRamms/Flower-catalog/config"
	userControllers "github.com/RemowRamms/Flower-catalog/controllers/user"
	"github.com/RemowRamms/Flower-catalog/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the "/api/v2/users" endpoints. User records
// carry emails, so the whole group is admin-only.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	users := r.Group("/api/v2/users")
	users.Use(middleware.RequireAdmin(cfg.Auth.JWTSecret, cfg.Auth.APIKey))
	{
		users.GET("/", userControllers.GetAllUsers(db))
		users.GET("/:id", userControllers.GetUserByID(db))
	}
}
