package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

func renderRestock(c *gin.Context, db *gorm.DB, extra gin.H) {
	ctx, _ := middleware.CurrentUser(c)
	data := gin.H{
		"username": ctx.Username,
		"role":     ctx.Role,
	}
	var products []models.Product
	if err := db.Order("quantity ASC").Find(&products).Error; err == nil {
		data["products"] = products
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(http.StatusOK, "restock_products.html", data)
}

// GET /restock-products — catalog sorted lowest stock first.
func RestockPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderRestock(c, db, gin.H{})
	}
}

// POST /restock-products
func Restock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
		if err != nil {
			renderRestock(c, db, gin.H{"error": "Invalid product ID"})
			return
		}
		added, err := strconv.Atoi(c.PostForm("added_quantity"))
		if err != nil {
			renderRestock(c, db, gin.H{"error": "Invalid quantity"})
			return
		}

		product, err := engine.Restock(db, uint(productID), added)
		middleware.RecordEngineOperation("restock", err)
		if err != nil {
			msg := "Failed to restock product"
			switch {
			case errors.Is(err, engine.ErrProductNotFound):
				msg = "Product not found"
			case errors.Is(err, engine.ErrValidation):
				msg = "Restock quantity cannot be negative"
			}
			renderRestock(c, db, gin.H{"error": msg})
			return
		}

		renderRestock(c, db, gin.H{
			"success": "Restocked " + product.DisplayName() + ", now " +
				strconv.Itoa(product.Quantity) + " in stock",
		})
	}
}
