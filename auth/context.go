package auth

import "github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"

// Context is the authenticated caller identity. It is produced exactly once
// per request at the session boundary (middleware) and threaded explicitly
// into every engine call; nothing downstream re-derives identity from raw
// request parameters.
type Context struct {
	UserID   uint
	Username string
	Role     models.Role
}

// IsAdmin reports whether the caller may use the admin surface.
func (c Context) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}
