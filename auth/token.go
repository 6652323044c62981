package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "session"

var ErrInvalidToken = errors.New("invalid or expired session token")

// GenerateToken signs a session token for the user. The token carries the
// full Context so request handling never has to look the user up again.
func GenerateToken(user models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and rebuilds the caller Context.
func ParseToken(tokenString, secret string) (Context, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Context{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Context{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Context{}, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	roleStr, _ := claims["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return Context{}, ErrInvalidToken
	}

	return Context{
		UserID:   uint(userID),
		Username: username,
		Role:     role,
	}, nil
}
