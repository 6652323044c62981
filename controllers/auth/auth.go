package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/config"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// GET / and GET /login
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// POST /login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.HTML(http.StatusOK, "login.html", gin.H{"error": "Username does not exist"})
				return
			}
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Login failed, please try again"})
			return
		}

		if !auth.CheckPassword(user.PasswordHash, password) {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Incorrect password"})
			return
		}

		token, err := auth.GenerateToken(user, cfg.JWTSecret, cfg.SessionTTL)
		if err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Login failed, please try again"})
			return
		}

		c.SetCookie(auth.SessionCookie, token, int(cfg.SessionTTL.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}

// GET /register
func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		email := c.PostForm("email")
		roleStr := c.PostForm("role")
		password := c.PostForm("password")
		confirm := c.PostForm("confirm_password")

		if username == "" || email == "" || password == "" {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "All fields are required"})
			return
		}
		if password != confirm {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "Passwords do not match"})
			return
		}

		role, err := models.ParseRole(roleStr)
		if err != nil {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "Invalid role"})
			return
		}

		var existing models.User
		err = db.Where("username = ? OR email = ?", username, email).First(&existing).Error
		if err == nil {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "User or email already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "Registration failed, please try again"})
			return
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "Registration failed, please try again"})
			return
		}

		user := models.User{
			Username:     username,
			Email:        email,
			Role:         role,
			PasswordHash: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "Registration failed, please try again"})
			return
		}

		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// POST /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/")
	}
}
