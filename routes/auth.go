package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/config"
	authControllers "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/controllers/auth"
)

// SetupAuthRoutes registers the public login/register surface. No
// middleware: these are the only routes reachable without a session.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/", authControllers.LoginPage())
	r.GET("/login", authControllers.LoginPage())
	r.POST("/login", authControllers.Login(db, cfg))
	r.GET("/register", authControllers.RegisterPage())
	r.POST("/register", authControllers.Register(db))
	r.POST("/logout", authControllers.Logout())
}
