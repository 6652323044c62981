package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/config"
	cartControllers "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/cart"
	dashboardControllers "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/dashboard"
	orderControllers "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/order"
	productcontroller "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/product"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
)

// SetupCustomerRoutes registers every session-protected endpoint available
// to both roles: dashboards, browsing, cart, checkout, order history.
func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	group := r.Group("")
	group.Use(middleware.RequireUser(cfg.JWTSecret))
	{
		group.GET("/dashboard", dashboardControllers.Dashboard(db))

		group.GET("/view-products", productcontroller.ViewProducts(db))
		group.GET("/browse-products", productcontroller.BrowseProducts(db))

		group.POST("/add-to-cart", cartControllers.AddToCart(db))
		group.POST("/remove-from-cart/:id", cartControllers.RemoveFromCart(db))
		group.GET("/my-cart", cartControllers.MyCart(db))
		group.POST("/bill", cartControllers.Bill(db))

		group.POST("/place-order", orderControllers.PlaceOrder(db))
		group.POST("/confirm-buy", orderControllers.ConfirmBuy(db))
		group.GET("/order-history", orderControllers.OrderHistory(db))
	}
}
