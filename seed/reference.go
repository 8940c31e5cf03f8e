package seed

import (
	"fmt"
	"log"
	"net/url"

	"github.com/RemowRamms/Flower-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// Reference data is fixed; only product stock is randomized.

var categoryNames = []string{
	"Bouquets",
	"Roses",
	"Tulips",
	"Potted Plants",
	"Wedding Flowers",
	"Gift Baskets",
}

type productSeed struct {
	Name     string
	Category string
	Price    float64
}

var productSeeds = []productSeed{
	{"Red Roses Bouquet", "Bouquets", 150.00},
	{"Sunflower Bouquet", "Bouquets", 120.00},
	{"Mixed Spring Bouquet", "Bouquets", 95.00},
	{"Single Red Rose", "Roses", 15.00},
	{"White Roses Dozen", "Roses", 140.00},
	{"Pink Tulips Bundle", "Tulips", 80.00},
	{"Yellow Tulips Bundle", "Tulips", 75.00},
	{"Orchid Pot", "Potted Plants", 60.00},
	{"Succulent Trio", "Potted Plants", 45.00},
	{"Bridal Bouquet", "Wedding Flowers", 250.00},
	{"Table Centerpiece", "Wedding Flowers", 110.00},
	{"Chocolate & Flowers Basket", "Gift Baskets", 130.00},
}

type userSeed struct {
	Name  string
	Email string
	Role  models.UserRole
}

var userSeeds = []userSeed{
	{"Alice", "alice@example.com", models.RoleCustomer},
	{"Nilu", "nilu@example.com", models.RoleCustomer},
	{"Mahmoud", "mahmoud@example.com", models.RoleCustomer},
	{"John Doe", "john.doe@example.com", models.RoleAdmin},
	{"Jane Smith", "jane.smith@example.com", models.RoleCustomer},
}

// placeholderPassword is hashed once per run and shared by every seeded
// user. Sample accounts only.
const placeholderPassword = "securepassword"

// imageURL builds a deterministic image location from the product name.
func imageURL(name string) string {
	return "https://example.com/images/" + url.PathEscape(name) + ".jpg"
}

func (s *Seeder) loadCategories() (map[string]uint, error) {
	ids := make(map[string]uint, len(categoryNames))
	for _, name := range categoryNames {
		category := models.Category{Name: name}
		if err := s.db.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("create category %q: %w", name, err)
		}
		ids[name] = category.ID
	}
	log.Printf("✅ Created %d categories", len(ids))
	return ids, nil
}

func (s *Seeder) loadProducts(categoryIDs map[string]uint) ([]models.Product, error) {
	products := make([]models.Product, 0, len(productSeeds))
	for _, p := range productSeeds {
		product := models.Product{
			Name:        p.Name,
			Description: fmt.Sprintf("Fresh %s from our flower shop", p.Name),
			Price:       p.Price,
			Stock:       5 + s.rng.Intn(46), // uniform in [5, 50]
			ImageURL:    imageURL(p.Name),
			CategoryID:  categoryIDs[p.Category],
		}
		if err := s.db.Create(&product).Error; err != nil {
			return nil, fmt.Errorf("create product %q: %w", p.Name, err)
		}
		products = append(products, product)
	}
	log.Printf("✅ Created %d products", len(products))
	return products, nil
}

func (s *Seeder) loadUsers() ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	users := make([]models.User, 0, len(userSeeds))
	for _, u := range userSeeds {
		user := models.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user %q: %w", u.Email, err)
		}
		users = append(users, user)
	}
	log.Printf("✅ Created %d users", len(users))
	return users, nil
}
