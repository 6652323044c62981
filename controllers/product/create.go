package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// GET /add-product
func AddProductPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)
		c.HTML(http.StatusOK, "add_product.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
		})
	}
}

// POST /add-product
func AddProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)
		render := func(key, msg string) {
			c.HTML(http.StatusOK, "add_product.html", gin.H{
				"username": ctx.Username,
				"role":     ctx.Role,
				key:        msg,
			})
		}

		category := c.PostForm("category")
		subcategory := c.PostForm("subcategory")
		brand := c.PostForm("brand")
		desc := c.PostForm("desc")

		if category == "" || desc == "" {
			render("error", "Category and description are required")
			return
		}

		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil || quantity < 0 {
			render("error", "Invalid quantity")
			return
		}
		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil || price <= 0 {
			render("error", "Invalid price")
			return
		}

		product := models.Product{
			Category:    category,
			Subcategory: subcategory,
			Brand:       brand,
			Description: desc,
			Quantity:    quantity,
			Price:       price,
		}
		if err := db.Create(&product).Error; err != nil {
			render("error", "Failed to add product")
			return
		}

		render("success", "Product added successfully!")
	}
}
