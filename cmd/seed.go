package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/RemowRamms/Flower-catalog/config"
	"github.com/RemowRamms/Flower-catalog/database"
	"github.com/RemowRamms/Flower-catalog/seed"
	"github.com/spf13/cobra"
)

var seedOrders int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the database and load sample data",
	Long: `Deletes all existing rows (payments, order items, orders, products,
categories, users — in that order) and loads fixed reference data plus a
batch of randomized orders with matching payments.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedOrders, "orders", 0, "number of random orders to generate (default from config)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	// Progress goes to stdout; cobra reports the error itself on stderr.
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("❌ Failed to close database: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	orders := cfg.Seed.Orders
	if seedOrders > 0 {
		orders = seedOrders
	}

	return seed.New(db, seed.WithOrderCount(orders)).Run()
}
