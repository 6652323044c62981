package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// ─── Restock ──────────────────────────────────────────────────────────────────

func TestRestockIsAdditive(t *testing.T) {
	db := newTestDB(t)
	product := createProduct(t, db, "iPhone 13", 3, 999.99)

	updated, err := engine.Restock(db, product.ID, 7)
	require.NoError(t, err)
	require.Equal(t, 10, updated.Quantity)

	// Repeated calls compound.
	updated, err = engine.Restock(db, product.ID, 7)
	require.NoError(t, err)
	require.Equal(t, 17, updated.Quantity)

	// Zero is a no-op, not an error.
	updated, err = engine.Restock(db, product.ID, 0)
	require.NoError(t, err)
	require.Equal(t, 17, updated.Quantity)
}

func TestRestockValidation(t *testing.T) {
	db := newTestDB(t)
	product := createProduct(t, db, "iPhone 13", 3, 999.99)

	_, err := engine.Restock(db, product.ID, -1)
	require.ErrorIs(t, err, engine.ErrValidation)

	_, err = engine.Restock(db, 999, 5)
	require.ErrorIs(t, err, engine.ErrProductNotFound)
}

// ─── Conditional delete ───────────────────────────────────────────────────────

func TestDeleteProductBlockedByUndeliveredOrder(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "iPhone 13", 10, 999.99)

	order, err := engine.PlaceDirectOrder(db, actorFor(user), product.ID, 1)
	require.NoError(t, err)

	err = engine.DeleteProduct(db, product.ID)
	require.ErrorIs(t, err, engine.ErrProductInUse)

	// Product row intact.
	var kept models.Product
	require.NoError(t, db.First(&kept, product.ID).Error)

	// A shipped order still blocks deletion.
	_, err = engine.UpdateOrderStatus(db, order.ID, "Shipped")
	require.NoError(t, err)
	require.ErrorIs(t, engine.DeleteProduct(db, product.ID), engine.ErrProductInUse)
}

func TestDeleteProductCascadesDeliveredHistory(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "iPhone 13", 10, 999.99)
	actor := actorFor(user)

	order, err := engine.PlaceDirectOrder(db, actor, product.ID, 1)
	require.NoError(t, err)
	_, err = engine.UpdateOrderStatus(db, order.ID, "Shipped")
	require.NoError(t, err)
	_, err = engine.UpdateOrderStatus(db, order.ID, "Delivered")
	require.NoError(t, err)

	// A pending cart row referencing the product must not survive it.
	require.NoError(t, engine.AddToCart(db, actor, product.ID, 1))

	require.NoError(t, engine.DeleteProduct(db, product.ID))

	var products, orders, items, cartRows int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartRows).Error)
	require.Zero(t, products)
	require.Zero(t, orders) // order lost its last item and went with it
	require.Zero(t, items)
	require.Zero(t, cartRows)
}

func TestDeleteProductKeepsOrdersWithOtherItems(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	phone := createProduct(t, db, "iPhone 13", 10, 999.99)
	laptop := createProduct(t, db, "XPS 15", 5, 1499.99)
	actor := actorFor(user)

	require.NoError(t, engine.AddToCart(db, actor, phone.ID, 1))
	require.NoError(t, engine.AddToCart(db, actor, laptop.ID, 1))
	order, err := engine.Checkout(db, actor)
	require.NoError(t, err)

	_, err = engine.UpdateOrderStatus(db, order.ID, "Shipped")
	require.NoError(t, err)
	_, err = engine.UpdateOrderStatus(db, order.ID, "Delivered")
	require.NoError(t, err)

	require.NoError(t, engine.DeleteProduct(db, phone.ID))

	// The order survives with its remaining item.
	var kept models.Order
	require.NoError(t, db.Preload("Items").First(&kept, order.ID).Error)
	require.Len(t, kept.Items, 1)
	require.Equal(t, laptop.ID, kept.Items[0].ProductID)
}

func TestDeleteProductUnknown(t *testing.T) {
	db := newTestDB(t)
	require.ErrorIs(t, engine.DeleteProduct(db, 999), engine.ErrProductNotFound)
}
