package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("testpass")
	require.NoError(t, err)
	require.NotEqual(t, "testpass", hash)

	require.True(t, auth.CheckPassword(hash, "testpass"))
	require.False(t, auth.CheckPassword(hash, "wrongpass"))
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		ID:       42,
		Username: "customer",
		Role:     models.RoleCustomer,
	}

	token, err := auth.GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	ctx, err := auth.ParseToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, uint(42), ctx.UserID)
	require.Equal(t, "customer", ctx.Username)
	require.Equal(t, models.RoleCustomer, ctx.Role)
	require.False(t, ctx.IsAdmin())
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	user := models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}

	token, err := auth.GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, "other-secret")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenRejectsExpired(t *testing.T) {
	user := models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}

	token, err := auth.GenerateToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, "secret")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token", "secret")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
