package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// GET /view-products?search=...
// Full catalog with optional search across description, brand and category.
func ViewProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)
		search := c.Query("search")

		query := db.Order("id ASC")
		if search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"description LIKE ? OR brand LIKE ? OR category LIKE ?",
				like, like, like,
			)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.HTML(http.StatusOK, "view_products.html", gin.H{
				"username": ctx.Username,
				"role":     ctx.Role,
				"search":   search,
				"error":    "Failed to load products",
			})
			return
		}

		c.HTML(http.StatusOK, "view_products.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"products": products,
			"search":   search,
		})
	}
}

// GET /browse-products — the customer-facing catalog.
func BrowseProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.HTML(http.StatusOK, "browse_products.html", gin.H{
				"username": ctx.Username,
				"role":     ctx.Role,
				"error":    "Failed to load products",
			})
			return
		}

		c.HTML(http.StatusOK, "browse_products.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"products": products,
		})
	}
}
