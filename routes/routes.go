package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/config"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
)

// SetupRoutes is the single entry-point that wires up the public, customer,
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.Use(middleware.Prometheus())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	SetupAuthRoutes(r, db, cfg)
	SetupCustomerRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
