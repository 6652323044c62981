package orderControllers

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

func renderBrowse(c *gin.Context, db *gorm.DB, extra gin.H) {
	ctx, _ := middleware.CurrentUser(c)
	data := gin.H{
		"username": ctx.Username,
		"role":     ctx.Role,
	}
	var products []models.Product
	if err := db.Order("id ASC").Find(&products).Error; err == nil {
		data["products"] = products
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(http.StatusOK, "browse_products.html", data)
}

// POST /place-order — the single-item order path; re-renders the catalog
// with the outcome message.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
		if err != nil {
			renderBrowse(c, db, gin.H{"error": "Invalid product ID"})
			return
		}
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			renderBrowse(c, db, gin.H{"error": "Invalid quantity"})
			return
		}

		order, err := engine.PlaceDirectOrder(db, ctx, uint(productID), quantity)
		middleware.RecordEngineOperation("place_order", err)
		if err != nil {
			msg := "Failed to place order"
			switch {
			case errors.Is(err, engine.ErrUserNotFound):
				msg = "User not found"
			case errors.Is(err, engine.ErrProductNotFound):
				msg = "Product not found"
			case errors.Is(err, engine.ErrInsufficientStock), errors.Is(err, engine.ErrValidation):
				msg = err.Error()
			}
			renderBrowse(c, db, gin.H{"error": msg})
			return
		}

		BroadcastOrder(db, order.ID)
		renderBrowse(c, db, gin.H{"success": "Order placed successfully!"})
	}
}

// POST /confirm-buy — converts the whole cart into an order.
func ConfirmBuy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		order, err := engine.Checkout(db, ctx)
		middleware.RecordEngineOperation("checkout", err)
		if err != nil {
			msg := "Failed to place order"
			switch {
			case errors.Is(err, engine.ErrEmptyCart):
				msg = "Your cart is empty"
			case errors.Is(err, engine.ErrInsufficientStock):
				msg = err.Error()
			}
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      msg,
				"redirect_url": "/my-cart",
			})
			return
		}

		BroadcastOrder(db, order.ID)
		c.Redirect(http.StatusSeeOther, "/order-history")
	}
}

// POST /update-order-status/:id
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Invalid order ID",
				"redirect_url": "/admin-orders",
			})
			return
		}

		_, err = engine.UpdateOrderStatus(db, uint(id), c.PostForm("status"))
		middleware.RecordEngineOperation("update_order_status", err)
		if err != nil {
			msg := "Failed to update order status"
			switch {
			case errors.Is(err, engine.ErrOrderNotFound):
				msg = "Order not found"
			case errors.Is(err, engine.ErrInvalidStatus):
				msg = err.Error()
			}
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      msg,
				"redirect_url": "/admin-orders",
			})
			return
		}

		c.Redirect(http.StatusSeeOther, "/admin-orders")
	}
}

// GET /order-history — the caller's own orders, newest first.
func OrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.
			Preload("Items.Product").
			Where("user_id = ?", ctx.UserID).
			Order("date DESC").
			Find(&orders).Error; err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to load order history",
				"redirect_url": "/dashboard",
			})
			return
		}

		c.HTML(http.StatusOK, "order_history.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"orders":   orders,
		})
	}
}

// GET /admin-orders — every order in the store, newest first.
func AdminOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items.Product").
			Order("date DESC").
			Find(&orders).Error; err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to load orders",
				"redirect_url": "/dashboard",
			})
			return
		}

		c.HTML(http.StatusOK, "admin_orders.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"orders":   orders,
		})
	}
}

// GET /sales-history — per-item sales breakdown with line totals at the
// current product price.
func SalesHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items.Product").
			Order("date DESC").
			Find(&orders).Error; err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to load sales history",
				"redirect_url": "/dashboard",
			})
			return
		}

		type saleRow struct {
			OrderRef string
			Customer string
			Product  string
			Quantity int
			Price    float64
			Total    float64
			Status   models.OrderStatus
			Date     string
		}
		var rows []saleRow
		for _, order := range orders {
			for _, item := range order.Items {
				rows = append(rows, saleRow{
					OrderRef: order.OrderRef,
					Customer: order.User.Username,
					Product:  item.Product.DisplayName(),
					Quantity: item.Quantity,
					Price:    item.Product.Price,
					Total:    float64(item.Quantity) * item.Product.Price,
					Status:   order.Status,
					Date:     order.Date.Format("02 January 2006"),
				})
			}
		}

		c.HTML(http.StatusOK, "sales_history.html", gin.H{
			"username": ctx.Username,
			"role":     ctx.Role,
			"sales":    rows,
		})
	}
}
