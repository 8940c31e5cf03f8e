package seed

import (
	"fmt"
	"log"

	"github.com/RemowRamms/Flower-catalog/models"
	"gorm.io/gorm"
)

// ResetStep names one table wipe. The step order is the invariant:
// children are deleted before anything they reference.
type ResetStep struct {
	Name  string
	Model interface{}
}

// ResetSteps returns the dependency-ordered cleanup sequence.
func ResetSteps() []ResetStep {
	return []ResetStep{
		{"payments", &models.Payment{}},
		{"order_items", &models.OrderItem{}},
		{"orders", &models.Order{}},
		{"products", &models.Product{}},
		{"categories", &models.Category{}},
		{"users", &models.User{}},
	}
}

func (s *Seeder) reset() error {
	for _, step := range ResetSteps() {
		res := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(step.Model)
		if res.Error != nil {
			return fmt.Errorf("reset %s: %w", step.Name, res.Error)
		}
		log.Printf("🗑️ Cleared %s (%d rows)", step.Name, res.RowsAffected)
	}
	return nil
}
