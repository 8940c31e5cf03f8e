package userControllers

import (
	"net/http"

	"github.com/RemowRamms/Flower-catalog/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetLegacyUsers serves the historical GET /api/users route. Older
// clients expect the {success, count, data} envelope, so it is kept
// as-is; the data now comes from the database instead of the in-memory
// list the route started with.
func GetLegacyUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "name", "email", "role", "created_at").
			Order("created_at asc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error fetching users",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(users),
			"data":    users,
		})
	}
}
