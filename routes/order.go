package routes

import (
	"github.com/RemowRamms/Flower-catalog/config"
	orderControllers "github.com/RemowRamms/Flower-catalog/controllers/order"
	paymentControllers "github.com/RemowRamms/Flower-catalog/controllers/payment"
	"github.com/RemowRamms/Flower-catalog/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the "/api/v2" order and payment endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := middleware.RequireAdmin(cfg.Auth.JWTSecret, cfg.Auth.APIKey)

	orders := r.Group("/api/v2/orders")
	{
		orders.POST("/", orderControllers.PlaceOrderHandler(db))
		orders.GET("/", orderControllers.GetAllOrdersHandler(db))
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
		orders.DELETE("/:orderID", admin, orderControllers.DeleteOrderHandler(db))
	}

	payments := r.Group("/api/v2/payments")
	{
		payments.GET("/", paymentControllers.GetAllPayments(db))
		payments.GET("/order/:orderID", paymentControllers.GetPaymentByOrder(db))
	}
}
