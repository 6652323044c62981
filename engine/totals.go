package engine

import (
	"math"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

const (
	// GSTRate is applied to the cart subtotal at billing time.
	GSTRate = 0.18
	// FlatShipping is charged on any non-empty cart.
	FlatShipping = 50.0
)

// Totals is the computed bill for a cart.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// ComputeCartTotals prices a cart. Each item must carry its resolved
// Product so the current unit price is available. An empty cart yields
// all-zero totals; shipping is flat and charged only when the cart holds
// at least one item.
func ComputeCartTotals(items []models.CartItem) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += float64(item.Quantity) * item.Product.Price
	}
	t.Subtotal = round2(t.Subtotal)
	t.Tax = round2(t.Subtotal * GSTRate)
	if len(items) > 0 {
		t.Shipping = FlatShipping
	}
	t.Total = round2(t.Subtotal + t.Tax + t.Shipping)
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
