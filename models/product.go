package models

import "time"

// LowStockThreshold is the quantity below which a product is surfaced as
// low stock on the admin dashboard.
const LowStockThreshold = 5

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string  `gorm:"size:100;not null" json:"category"`
	Subcategory string  `gorm:"size:100" json:"subcategory"`
	Brand       string  `gorm:"size:100" json:"brand"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Quantity    int     `gorm:"not null;default:0" json:"quantity"` // available stock, never negative
	Price       float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is the label shown to users in listings and activity
// sentences. Products are named by their description.
func (p Product) DisplayName() string {
	return p.Description
}

// LowStock reports whether the product should appear in low-stock counts.
func (p Product) LowStock() bool {
	return p.Quantity < LowStockThreshold
}
