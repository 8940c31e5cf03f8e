package routes

import (
	"github.com/RemowRamms/Flower-catalog/auth"
	"github.com/RemowRamms/Flower-catalog/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public authentication endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(db, cfg.Auth.JWTSecret))
	}
}
