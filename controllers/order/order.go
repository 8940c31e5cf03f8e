package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/RemowRamms/Flower-catalog/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type PlaceOrderItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

type PlaceOrderRequest struct {
	UserID        string           `json:"user_id" binding:"required"`
	Status        string           `json:"status"`
	PaymentMethod string           `json:"payment_method"`
	Items         []PlaceOrderItem `json:"items" binding:"required,min=1"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "", string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case "", string(models.PaymentMethodCreditCard):
		return models.PaymentMethodCreditCard, nil
	case string(models.PaymentMethodPaypal):
		return models.PaymentMethodPaypal, nil
	case string(models.PaymentMethodApplePay):
		return models.PaymentMethodApplePay, nil
	case string(models.PaymentMethodCard):
		return models.PaymentMethodCard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// -------- Core Logic --------

// PlaceOrder creates an order with price snapshots taken from the current
// catalog, plus a payment row unless the order is cancelled. Same rules
// the seeder applies.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	status, err := mapOrderStatus(req.Status)
	if err != nil {
		return nil, err
	}
	method, err := mapPaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var items []models.OrderItem

		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return errors.New("product not found")
			}
			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + product.Name)
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total += product.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		order = models.Order{
			UserID:      req.UserID,
			Items:       items,
			Status:      status,
			TotalAmount: total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if status != models.OrderStatusCancelled {
			paymentStatus := models.PaymentStatusPending
			if status == models.OrderStatusCompleted {
				paymentStatus = models.PaymentStatusPaid
			}
			payment := models.Payment{
				OrderID: order.ID,
				Amount:  order.TotalAmount,
				Method:  method,
				Status:  paymentStatus,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			order.Payment = &payment
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /api/v2/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := PlaceOrder(db, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/v2/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			Preload("Payment").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/v2/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			Preload("Payment").
			First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/v2/orders/user/:userID
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Product").
			Preload("Payment").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DELETE /api/v2/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
