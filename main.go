package main

import (
	"errors"
	"html/template"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/config"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	seedAdmin(db)

	// Gin setup
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"mulQty": func(quantity int, price float64) float64 {
			return float64(quantity) * price
		},
	})
	r.LoadHTMLGlob("templates/*.html")

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, cfg)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// seedAdmin creates the initial admin account on an empty users table so a
// fresh deployment can be administered at all.
func seedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hash, err := auth.HashPassword("admin")
	if err != nil {
		log.Printf("⚠️ Failed to hash seed admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@localhost",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Printf("⚠️ Failed to seed admin user: %v", err)
		return
	}
	log.Println("✅ Seeded initial admin account (username: admin)")
}
