package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/middleware"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// GET /dashboard — fans out to the role-specific report.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, ok := middleware.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if ctx.Role == models.RoleAdmin {
			report, err := engine.AdminDashboard(db)
			if err != nil {
				c.HTML(http.StatusOK, "message.html", gin.H{
					"message":      "Failed to load dashboard",
					"redirect_url": "/login",
				})
				return
			}
			c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
				"username":          ctx.Username,
				"role":              ctx.Role,
				"total_products":    report.TotalProducts,
				"todays_sales":      report.TodaysSales,
				"low_stock_count":   report.LowStockCount,
				"recent_activities": report.RecentActivity,
			})
			return
		}

		report, err := engine.CustomerDashboard(db, ctx)
		if err != nil {
			c.HTML(http.StatusOK, "message.html", gin.H{
				"message":      "Failed to load dashboard",
				"redirect_url": "/login",
			})
			return
		}
		c.HTML(http.StatusOK, "customer_dashboard.html", gin.H{
			"username":         ctx.Username,
			"role":             ctx.Role,
			"todays_total":     report.TodaysTotal,
			"todays_products":  report.TodaysProducts,
			"total_quantity":   report.TotalQuantity,
			"total_products":   report.TotalDistinctProducts,
			"recent_purchases": report.RecentPurchases,
		})
	}
}
