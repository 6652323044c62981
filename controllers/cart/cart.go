package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
)

// POST /add-to-cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid product ID",
				"redirect_url": "/browse-products",
			})
			return
		}
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid quantity",
				"redirect_url": "/browse-products",
			})
			return
		}

		err = engine.AddToCart(db, ctx, uint(productID), quantity)
		middleware.RecordEngineOperation("add_to_cart", err)
		if err != nil {
			msg := "Failed to add item to cart"
			switch {
			case errors.Is(err, engine.ErrProductNotFound):
				msg = "Product does not exist"
			case errors.Is(err, engine.ErrValidation):
				msg = "Quantity must be at least 1"
			}
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      msg,
				"redirect_url": "/browse-products",
			})
			return
		}

		c.Redirect(http.StatusSeeOther, "/browse-products")
	}
}

// POST /remove-from-cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid cart item",
				"redirect_url": "/my-cart",
			})
			return
		}

		err = engine.RemoveCartItem(db, ctx, uint(id))
		middleware.RecordEngineOperation("remove_from_cart", err)
		if err != nil && !errors.Is(err, engine.ErrCartItemNotFound) {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to remove item from cart",
				"redirect_url": "/my-cart",
			})
			return
		}

		c.Redirect(http.StatusSeeOther, "/my-cart")
	}
}

// GET /my-cart
func MyCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		items, err := engine.CartForUser(db, ctx)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to load cart",
				"redirect_url": "/browse-products",
			})
			return
		}

		totals := engine.ComputeCartTotals(items)
		c.HTML(http.StatusOK, "my_cart.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"items":    items,
			"subtotal": totals.Subtotal,
			"tax":      totals.Tax,
			"shipping": totals.Shipping,
			"total":    totals.Total,
		})
	}
}

// POST /bill — the itemised bill for the current cart.
func Bill(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		items, err := engine.CartForUser(db, ctx)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to load cart",
				"redirect_url": "/my-cart",
			})
			return
		}

		totals := engine.ComputeCartTotals(items)
		c.HTML(http.StatusOK, "bill.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"items":    items,
			"subtotal": totals.Subtotal,
			"tax":      totals.Tax,
			"shipping": totals.Shipping,
			"total":    totals.Total,
		})
	}
}
