package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// GET /edit-product/:id
func EditProductPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Product not found",
				"redirect_url": "/view-products",
			})
			return
		}

		c.HTML(http.StatusOK, "edit_product.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"product":  product,
		})
	}
}

// POST /edit-product/:id — overwrites every product field from the form.
func EditProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Product not found",
				"redirect_url": "/view-products",
			})
			return
		}

		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil || quantity < 0 {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid quantity",
				"redirect_url": "/view-products",
			})
			return
		}
		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil || price <= 0 {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid price",
				"redirect_url": "/view-products",
			})
			return
		}

		product.Category = c.PostForm("category")
		product.Subcategory = c.PostForm("subcategory")
		product.Brand = c.PostForm("brand")
		product.Description = c.PostForm("desc")
		product.Quantity = quantity
		product.Price = price

		if err := db.Save(&product).Error; err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to update product",
				"redirect_url": "/view-products",
			})
			return
		}

		c.Redirect(http.StatusSeeOther, "/view-products")
	}
}
