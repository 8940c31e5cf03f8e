package routes

import (
	"github.com/RemowRamms/Flower-catalog/config"
	productcontroller "github.com/RemowRamms/Flower-catalog/controllers/product"
	"github.com/RemowRamms/Flower-catalog/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the "/api/v2" category and product
// endpoints. Reads are public; writes need admin access.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := middleware.RequireAdmin(cfg.Auth.JWTSecret, cfg.Auth.APIKey)

	categories := r.Group("/api/v2/categories")
	{
		categories.GET("/", productcontroller.GetAllCategories(db))
		categories.GET("/:id", productcontroller.GetCategoryByID(db))
		categories.POST("/", admin, productcontroller.CreateCategory(db))
		categories.PUT("/:id", admin, productcontroller.UpdateCategory(db))
		categories.DELETE("/:id", admin, productcontroller.DeleteCategory(db))
	}

	products := r.Group("/api/v2/products")
	{
		products.GET("/", productcontroller.GetProducts(db))
		products.GET("/export", productcontroller.ExportProductsToExcel(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.POST("/", admin, productcontroller.CreateProduct(db))
		products.PUT("/:id", admin, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", admin, productcontroller.DeleteProduct(db))
	}
}
