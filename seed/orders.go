package seed

import (
	"fmt"
	"log"

	"github.com/RemowRamms/Flower-catalog/models"
)

var orderStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusCompleted,
	models.OrderStatusCancelled,
}

// paymentMethods excludes the legacy "card" value; the generator never
// emits it.
var paymentMethods = []models.PaymentMethod{
	models.PaymentMethodCreditCard,
	models.PaymentMethodPaypal,
	models.PaymentMethodApplePay,
}

// generateOrders synthesizes s.orderCount random orders. Draw order per
// order is fixed: user, item count, then product and quantity per slot,
// then status, then payment method. Products are drawn with replacement,
// so one order may list the same product twice.
func (s *Seeder) generateOrders(users []models.User, products []models.Product) error {
	for i := 0; i < s.orderCount; i++ {
		user := users[s.rng.Intn(len(users))]
		itemCount := 1 + s.rng.Intn(3) // {1, 2, 3}

		var items []models.OrderItem
		var total float64
		for j := 0; j < itemCount; j++ {
			product := products[s.rng.Intn(len(products))]
			quantity := 1 + s.rng.Intn(2) // {1, 2}
			total += product.Price * float64(quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  quantity,
				Price:     product.Price,
			})
		}

		status := orderStatuses[s.rng.Intn(len(orderStatuses))]

		order := models.Order{
			UserID:      user.ID,
			Items:       items,
			Status:      status,
			TotalAmount: total,
		}
		if err := s.db.Create(&order).Error; err != nil {
			return fmt.Errorf("create order %d: %w", i+1, err)
		}

		// Cancelled orders were never paid for.
		if status != models.OrderStatusCancelled {
			paymentStatus := models.PaymentStatusPending
			if status == models.OrderStatusCompleted {
				paymentStatus = models.PaymentStatusPaid
			}
			payment := models.Payment{
				OrderID: order.ID,
				Amount:  order.TotalAmount,
				Method:  paymentMethods[s.rng.Intn(len(paymentMethods))],
				Status:  paymentStatus,
			}
			if err := s.db.Create(&payment).Error; err != nil {
				return fmt.Errorf("create payment for order %d: %w", order.ID, err)
			}
		}
	}
	log.Printf("✅ Created %d orders", s.orderCount)
	return nil
}
