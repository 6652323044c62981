package engine

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

// CartForUser loads the caller's cart items with their products resolved,
// oldest first.
func CartForUser(db *gorm.DB, actor auth.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.
		Preload("Product").
		Where("user_id = ?", actor.UserID).
		Order("added_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart puts quantity units of a product into the caller's cart. The
// cart holds at most one row per (user, product): a repeat add increments
// the existing row instead of creating a duplicate.
func AddToCart(db *gorm.DB, actor auth.Context, productID uint, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var item models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", actor.UserID, productID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				UserID:    actor.UserID,
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		item.Quantity += quantity
		item.AddedAt = time.Now()
		return tx.Save(&item).Error
	})
}

// RemoveCartItem deletes one cart row. The row must belong to the caller;
// a foreign row is indistinguishable from a missing one.
func RemoveCartItem(db *gorm.DB, actor auth.Context, cartItemID uint) error {
	result := db.Where("id = ? AND user_id = ?", cartItemID, actor.UserID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
