package engine

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// Restock adds units to a product's available quantity. Purely additive:
// repeated calls compound.
func Restock(db *gorm.DB, productID uint, added int) (*models.Product, error) {
	if added < 0 {
		return nil, fmt.Errorf("%w: restock quantity cannot be negative", ErrValidation)
	}

	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		product.Quantity += added
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product and its purchase history. Deletion is
// refused while any order item referencing the product belongs to an order
// that has not reached the terminal Delivered state. Otherwise the
// product's order items are removed, orders left with zero items are
// removed with them, and finally the product row is deleted — all in one
// transaction.
func DeleteProduct(db *gorm.DB, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var live int64
		if err := tx.Model(&models.OrderItem{}).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("order_items.product_id = ? AND orders.status <> ?", productID, models.OrderStatusDelivered).
			Count(&live).Error; err != nil {
			return err
		}
		if live > 0 {
			return fmt.Errorf("%w: %d undelivered order item(s)", ErrProductInUse, live)
		}

		// Orders that will lose items; checked for emptiness after the delete.
		var orderIDs []uint
		if err := tx.Model(&models.OrderItem{}).
			Where("product_id = ?", productID).
			Distinct().
			Pluck("order_id", &orderIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", productID).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		for _, orderID := range orderIDs {
			var remaining int64
			if err := tx.Model(&models.OrderItem{}).
				Where("order_id = ?", orderID).
				Count(&remaining).Error; err != nil {
				return err
			}
			if remaining == 0 {
				if err := tx.Delete(&models.Order{}, orderID).Error; err != nil {
					return err
				}
			}
		}

		// Pending cart rows for the product would dangle; drop them too.
		if err := tx.Where("product_id = ?", productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})
}
