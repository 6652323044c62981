package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// generateOrderRef produces a unique, human-opaque order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceDirectOrder converts a single product selection straight into an
// order: one Order, one OrderItem, and a stock decrement, committed as one
// unit. The product row is locked for the duration of the transaction so
// the stock check and the decrement see the same quantity.
func PlaceDirectOrder(db *gorm.DB, actor auth.Context, productID uint, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, actor.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var product models.Product
		if err := lockForUpdate(tx).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if product.Quantity < quantity {
			return fmt.Errorf("%w: only %d units available", ErrInsufficientStock, product.Quantity)
		}

		order = models.Order{
			OrderRef: generateOrderRef(),
			UserID:   user.ID,
			Status:   models.OrderStatusPending,
			Date:     time.Now(),
			Items: []models.OrderItem{{
				ProductID: product.ID,
				Quantity:  quantity,
			}},
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		product.Quantity -= quantity
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Checkout converts the caller's entire cart into one order. Every cart
// item becomes an order item with its quantity preserved, each product's
// stock is decremented under a row lock, and the converted cart rows are
// deleted. The whole conversion commits as one unit; any failure leaves
// both the cart and the stock untouched.
//
// Stock sufficiency is re-validated here even though items were available
// when carted; a cart can outlive the stock that backed it.
func Checkout(db *gorm.DB, actor auth.Context) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, actor.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var cartItems []models.CartItem
		if err := tx.Where("user_id = ?", user.ID).
			Order("added_at ASC").
			Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			var product models.Product
			if err := lockForUpdate(tx).
				First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			if product.Quantity < item.Quantity {
				return fmt.Errorf("%w: only %d units of %s available",
					ErrInsufficientStock, product.Quantity, product.DisplayName())
			}

			product.Quantity -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			OrderRef: generateOrderRef(),
			UserID:   user.ID,
			Status:   models.OrderStatusPending,
			Date:     time.Now(),
			Items:    orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus advances an order along the fulfilment transition
// graph. The new status must be a declared successor of the current one;
// terminal orders cannot move.
func UpdateOrderStatus(db *gorm.DB, orderID uint, newStatus string) (*models.Order, error) {
	status, err := models.ParseOrderStatus(newStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !order.Status.CanTransition(status) {
			return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidStatus, order.Status, status)
		}

		order.Status = status
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
