package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/config"
	orderControllers "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/order"
	productcontroller "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/product"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
)

// SetupAdminRoutes registers the admin-only surface: product management,
// restocking, order status, sales reporting, exports, and the live feed.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	group := r.Group("")
	group.Use(middleware.RequireUser(cfg.JWTSecret), middleware.RequireAdmin())
	{
		group.GET("/add-product", productcontroller.AddProductPage())
		group.POST("/add-product", productcontroller.AddProduct(db))
		group.GET("/edit-product/:id", productcontroller.EditProductPage(db))
		group.POST("/edit-product/:id", productcontroller.EditProduct(db))
		group.POST("/delete-product/:id", productcontroller.DeleteProduct(db))
		group.GET("/restock-products", productcontroller.RestockPage(db))
		group.POST("/restock-products", productcontroller.Restock(db))

		group.POST("/update-order-status/:id", orderControllers.UpdateOrderStatus(db))
		group.GET("/admin-orders", orderControllers.AdminOrders(db))
		group.GET("/sales-history", orderControllers.SalesHistory(db))

		group.GET("/export-products", productcontroller.ExportProducts(db))
		group.GET("/export-sales", productcontroller.ExportSales(db))
		group.GET("/ws/orders", orderControllers.OrderFeed())
	}
}
