package seed

import (
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// DefaultOrderCount is how many random orders a run generates unless
// overridden with WithOrderCount.
const DefaultOrderCount = 20

// Rand is the source of randomness for the generator. *math/rand.Rand
// satisfies it; tests substitute a scripted sequence.
type Rand interface {
	Intn(n int) int
}

// Seeder wipes the store and repopulates it with reference data plus a
// batch of randomized, internally consistent orders.
type Seeder struct {
	db         *gorm.DB
	rng        Rand
	orderCount int
}

type Option func(*Seeder)

// WithOrderCount sets how many random orders to generate.
func WithOrderCount(n int) Option {
	return func(s *Seeder) {
		if n > 0 {
			s.orderCount = n
		}
	}
}

// WithRand replaces the default time-seeded random source.
func WithRand(r Rand) Option {
	return func(s *Seeder) {
		s.rng = r
	}
}

func New(db *gorm.DB, opts ...Option) *Seeder {
	s := &Seeder{
		db:         db,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		orderCount: DefaultOrderCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the full seeding sequence: reset, reference data, random
// orders. Steps run strictly in order because later steps depend on ids
// created by earlier ones. The first error aborts the run; the store may
// be left partially seeded and is fully replaced by the next run.
func (s *Seeder) Run() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.reset(); err != nil {
		return err
	}

	categoryIDs, err := s.loadCategories()
	if err != nil {
		return err
	}

	products, err := s.loadProducts(categoryIDs)
	if err != nil {
		return err
	}

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	if err := s.generateOrders(users, products); err != nil {
		return err
	}

	log.Println("🌱 Database seeding finished!")
	return nil
}
