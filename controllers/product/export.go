package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/RemowRamms/Flower-catalog/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/v2/products/export — catalog snapshot as a spreadsheet.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Name", "Category", "Price", "Stock", "Image URL"} {
			header.AddCell().SetString(title)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(p.ID))
			row.AddCell().SetString(p.Name)
			row.AddCell().SetString(p.Category.Name)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetInt(p.Stock)
			row.AddCell().SetString(p.ImageURL)
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to write Excel file: %v", err)})
		}
	}
}
