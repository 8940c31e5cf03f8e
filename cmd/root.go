package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flower-catalog",
	Short: "Flower Catalog API server and database seeder",
	Long: `Flower Catalog is a small e-commerce backend for a flower shop.

Run "flower-catalog serve" to start the HTTP API, or
"flower-catalog seed" to wipe the database and repopulate it with
sample categories, products, users and randomized orders.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
