package paymentControllers

import (
	"net/http"

	"github.com/RemowRamms/Flower-catalog/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/v2/payments
func GetAllPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.Payment
		if err := db.Order("created_at DESC").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// GET /api/v2/payments/order/:orderID
func GetPaymentByOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payment models.Payment
		if err := db.First(&payment, "order_id = ?", c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}
