package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

func writeWorkbook(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

// GET /export-products — full catalog as an Excel sheet.
func ExportProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Category", "Subcategory", "Brand", "Description", "Quantity", "Price", "CreatedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Subcategory)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		writeWorkbook(c, file, "products.xlsx")
	}
}

// GET /export-sales — one row per order item across the whole sales
// history. Line totals use the current product price, matching the
// dashboard reports.
func ExportSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items.Product").
			Order("date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"OrderRef", "Customer", "Product", "Quantity", "UnitPrice", "LineTotal", "Status", "Date"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range orders {
			for _, item := range order.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(order.OrderRef)
				row.AddCell().SetValue(order.User.Username)
				row.AddCell().SetValue(item.Product.DisplayName())
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Product.Price)
				row.AddCell().SetValue(float64(item.Quantity) * item.Product.Price)
				row.AddCell().SetValue(string(order.Status))
				row.AddCell().SetValue(order.Date.Format("2006-01-02 15:04:05"))
			}
		}

		writeWorkbook(c, file, "sales.xlsx")
	}
}
