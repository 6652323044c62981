package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/engine"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// ─── Direct orders ────────────────────────────────────────────────────────────

func TestPlaceDirectOrder(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "iPhone 13", 10, 999.99)

	order, err := engine.PlaceDirectOrder(db, actorFor(user), product.ID, 3)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.NotEmpty(t, order.OrderRef)
	require.Len(t, order.Items, 1)
	require.Equal(t, product.ID, order.Items[0].ProductID)
	require.Equal(t, 3, order.Items[0].Quantity)

	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	require.Equal(t, 7, updated.Quantity)
}

func TestPlaceDirectOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "XPS 15", 5, 1499.99)

	_, err := engine.PlaceDirectOrder(db, actorFor(user), product.ID, 6)
	require.ErrorIs(t, err, engine.ErrInsufficientStock)
	require.Contains(t, err.Error(), "only 5 units available")

	// Stock untouched, no partial order.
	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	require.Equal(t, 5, updated.Quantity)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.Zero(t, orders)
}

func TestPlaceDirectOrderUnknownUserAndProduct(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "iPhone 13", 10, 999.99)

	_, err := engine.PlaceDirectOrder(db, auth.Context{UserID: 999}, product.ID, 1)
	require.ErrorIs(t, err, engine.ErrUserNotFound)

	_, err = engine.PlaceDirectOrder(db, actorFor(user), 999, 1)
	require.ErrorIs(t, err, engine.ErrProductNotFound)
}

// ─── Checkout ─────────────────────────────────────────────────────────────────

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)

	_, err := engine.Checkout(db, actorFor(user))
	require.ErrorIs(t, err, engine.ErrEmptyCart)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.Zero(t, orders)
}

func TestCheckoutConvertsWholeCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	phone := createProduct(t, db, "iPhone 13", 10, 999.99)
	laptop := createProduct(t, db, "XPS 15", 5, 1499.99)
	actor := actorFor(user)

	require.NoError(t, engine.AddToCart(db, actor, phone.ID, 2))
	require.NoError(t, engine.AddToCart(db, actor, laptop.ID, 1))

	order, err := engine.Checkout(db, actor)
	require.NoError(t, err)

	// Order items match pre-checkout cart contents exactly.
	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)
	byProduct := map[uint]int{}
	for _, item := range items {
		byProduct[item.ProductID] = item.Quantity
	}
	require.Equal(t, map[uint]int{phone.ID: 2, laptop.ID: 1}, byProduct)

	// Cart fully cleared.
	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&cartCount).Error)
	require.Zero(t, cartCount)

	// Stock decremented per item.
	var p models.Product
	require.NoError(t, db.First(&p, phone.ID).Error)
	require.Equal(t, 8, p.Quantity)
	var p2 models.Product
	require.NoError(t, db.First(&p2, laptop.ID).Error)
	require.Equal(t, 4, p2.Quantity)
}

func TestCheckoutInsufficientStockLeavesEverythingIntact(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	phone := createProduct(t, db, "iPhone 13", 10, 999.99)
	laptop := createProduct(t, db, "XPS 15", 5, 1499.99)
	actor := actorFor(user)

	require.NoError(t, engine.AddToCart(db, actor, phone.ID, 2))
	require.NoError(t, engine.AddToCart(db, actor, laptop.ID, 1))

	// Stock sold out from under the cart.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", laptop.ID).Update("quantity", 0).Error)

	_, err := engine.Checkout(db, actor)
	require.ErrorIs(t, err, engine.ErrInsufficientStock)

	// No order, cart intact, no stock mutated.
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.Zero(t, orders)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&cartCount).Error)
	require.EqualValues(t, 2, cartCount)

	var p models.Product
	require.NoError(t, db.First(&p, phone.ID).Error)
	require.Equal(t, 10, p.Quantity)
}

// ─── Status updates ───────────────────────────────────────────────────────────

func TestUpdateOrderStatusFollowsTransitionTable(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "customer", models.RoleCustomer)
	product := createProduct(t, db, "iPhone 13", 10, 999.99)

	order, err := engine.PlaceDirectOrder(db, actorFor(user), product.ID, 1)
	require.NoError(t, err)

	// Pending cannot jump straight to Delivered.
	_, err = engine.UpdateOrderStatus(db, order.ID, "Delivered")
	require.ErrorIs(t, err, engine.ErrInvalidStatus)

	updated, err := engine.UpdateOrderStatus(db, order.ID, "Shipped")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	updated, err = engine.UpdateOrderStatus(db, order.ID, "Delivered")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, updated.Status)

	// Delivered is terminal.
	_, err = engine.UpdateOrderStatus(db, order.ID, "Shipped")
	require.ErrorIs(t, err, engine.ErrInvalidStatus)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := engine.UpdateOrderStatus(db, 999, "Shipped")
	require.ErrorIs(t, err, engine.ErrOrderNotFound)

	_, err = engine.UpdateOrderStatus(db, 999, "Lost")
	require.ErrorIs(t, err, engine.ErrInvalidStatus)
}
