package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

func TestAdminDashboard(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	phone := createProduct(t, db, "iPhone 13", 10, 999.99)
	createProduct(t, db, "XPS 15", 3, 1499.99) // below the low-stock threshold

	_, err := engine.PlaceDirectOrder(db, actorFor(user), phone.ID, 2)
	require.NoError(t, err)

	report, err := engine.AdminDashboard(db)
	require.NoError(t, err)

	require.EqualValues(t, 2, report.TotalProducts)
	require.EqualValues(t, 1, report.LowStockCount)
	// Valued at the current product price.
	require.InDelta(t, 2*999.99, report.TodaysSales, 1e-9)

	require.NotEmpty(t, report.RecentActivity)
	require.Contains(t, report.RecentActivity[0], "Sold 2 units of iPhone 13")
}

func TestAdminDashboardActivityOrderingAndTruncation(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)

	var products []models.Product
	for _, desc := range []string{"A", "B", "C", "D"} {
		products = append(products, createProduct(t, db, desc, 20, 10.0))
	}

	_, err := engine.PlaceDirectOrder(db, actorFor(user), products[0].ID, 1)
	require.NoError(t, err)
	_, err = engine.PlaceDirectOrder(db, actorFor(user), products[1].ID, 1)
	require.NoError(t, err)

	report, err := engine.AdminDashboard(db)
	require.NoError(t, err)

	// 2 sale events + 4 product additions, truncated to 5 with all sale
	// events ahead of the additions.
	require.Len(t, report.RecentActivity, 5)
	require.True(t, strings.HasPrefix(report.RecentActivity[0], "Sold"))
	require.True(t, strings.HasPrefix(report.RecentActivity[1], "Sold"))
	for _, entry := range report.RecentActivity[2:] {
		require.True(t, strings.HasPrefix(entry, "Added new product:"))
	}
}

func TestAdminDashboardIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "iPhone 13", 10, 999.99)
	_, err := engine.PlaceDirectOrder(db, actorFor(user), product.ID, 1)
	require.NoError(t, err)

	first, err := engine.AdminDashboard(db)
	require.NoError(t, err)
	second, err := engine.AdminDashboard(db)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCustomerDashboardScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice", models.RoleCustomer)
	bob := createUser(t, db, "bob", models.RoleCustomer)
	phone := createProduct(t, db, "iPhone 13", 20, 999.99)
	laptop := createProduct(t, db, "XPS 15", 20, 1499.99)

	_, err := engine.PlaceDirectOrder(db, actorFor(alice), phone.ID, 2)
	require.NoError(t, err)
	_, err = engine.PlaceDirectOrder(db, actorFor(alice), laptop.ID, 1)
	require.NoError(t, err)
	_, err = engine.PlaceDirectOrder(db, actorFor(bob), phone.ID, 5)
	require.NoError(t, err)

	report, err := engine.CustomerDashboard(db, actorFor(alice))
	require.NoError(t, err)

	require.Equal(t, 3, report.TotalQuantity)
	require.Equal(t, 2, report.TotalDistinctProducts)
	require.InDelta(t, 2*999.99+1499.99, report.TodaysTotal, 1e-9)
	require.Len(t, report.RecentPurchases, 2)
	for _, sentence := range report.RecentPurchases {
		require.Contains(t, sentence, "You purchased")
		require.Contains(t, sentence, "(Status: Pending)")
	}
}
