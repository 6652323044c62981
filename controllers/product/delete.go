package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
)

// POST /delete-product/:id
// Refused while any undelivered order still references the product.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid product ID",
				"redirect_url": "/view-products",
			})
			return
		}

		err = engine.DeleteProduct(db, uint(id))
		middleware.RecordEngineOperation("delete_product", err)
		if err != nil {
			msg := "Failed to delete product"
			switch {
			case errors.Is(err, engine.ErrProductNotFound):
				msg = "Product not found"
			case errors.Is(err, engine.ErrProductInUse):
				msg = "Product cannot be deleted: it belongs to orders that are not delivered yet"
			}
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      msg,
				"redirect_url": "/view-products",
			})
			return
		}

		c.Redirect(http.StatusSeeOther, "/view-products")
	}
}
