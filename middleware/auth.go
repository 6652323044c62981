package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
)

const contextKey = "auth_context"

// RequireUser validates the session cookie and stores the resulting
// auth.Context on the request. Unauthenticated requests are bounced to the
// login page; this is a browser-facing app, not a JSON API.
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		ctx, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(contextKey, ctx)
		c.Next()
	}
}

// RequireAdmin gates a route group to the admin role. Must run after
// RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, ok := CurrentUser(c)
		if !ok || !ctx.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller stored by RequireUser.
func CurrentUser(c *gin.Context) (auth.Context, bool) {
	val, exists := c.Get(contextKey)
	if !exists {
		return auth.Context{}, false
	}
	ctx, ok := val.(auth.Context)
	return ctx, ok
}
