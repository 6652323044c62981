package engine

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/auth"
	"github.com/ShirsatTanvi/E-Commerce-Inventory-and-Order-Management/models"
)

const activityLimit = 5

// AdminReport is the admin dashboard view-model.
//
// TodaysSales values order items at the *current* product price, not the
// price at purchase time. That matches the historical behavior of this
// system and is kept on purpose; see DESIGN.md.
type AdminReport struct {
	TotalProducts  int64
	TodaysSales    float64
	LowStockCount  int64
	RecentActivity []string
}

// CustomerReport is the customer dashboard view-model, scoped to the
// caller's own orders. Same current-price valuation as AdminReport.
type CustomerReport struct {
	TodaysTotal           float64
	TodaysProducts        []string
	TotalQuantity         int
	TotalDistinctProducts int
	RecentPurchases       []string
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func activityDate(t time.Time) string {
	return t.Format("02 January 2006")
}

// AdminDashboard aggregates storefront-wide metrics. Read-only: calling it
// twice with no intervening writes returns identical results.
func AdminDashboard(db *gorm.DB) (*AdminReport, error) {
	report := &AdminReport{}

	if err := db.Model(&models.Product{}).Count(&report.TotalProducts).Error; err != nil {
		return nil, err
	}

	start, end := dayBounds(time.Now())
	var todayItems []models.OrderItem
	if err := db.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.date >= ? AND orders.date < ?", start, end).
		Preload("Product").
		Find(&todayItems).Error; err != nil {
		return nil, err
	}
	for _, item := range todayItems {
		report.TodaysSales += float64(item.Quantity) * item.Product.Price
	}
	report.TodaysSales = round2(report.TodaysSales)

	if err := db.Model(&models.Product{}).
		Where("quantity < ?", models.LowStockThreshold).
		Count(&report.LowStockCount).Error; err != nil {
		return nil, err
	}

	// Activity feed order is deliberate: all sale events from the latest
	// orders first, then the newest product additions, truncated after
	// concatenation rather than merged chronologically.
	var latestOrders []models.Order
	if err := db.
		Preload("Items.Product").
		Order("date DESC").
		Limit(activityLimit).
		Find(&latestOrders).Error; err != nil {
		return nil, err
	}
	for _, order := range latestOrders {
		for _, item := range order.Items {
			report.RecentActivity = append(report.RecentActivity,
				fmt.Sprintf("Sold %d units of %s on %s",
					item.Quantity, item.Product.DisplayName(), activityDate(order.Date)))
		}
	}

	var recentProducts []models.Product
	if err := db.
		Order("created_at DESC").
		Limit(activityLimit).
		Find(&recentProducts).Error; err != nil {
		return nil, err
	}
	for _, product := range recentProducts {
		report.RecentActivity = append(report.RecentActivity,
			fmt.Sprintf("Added new product: %s", product.DisplayName()))
	}

	if len(report.RecentActivity) > activityLimit {
		report.RecentActivity = report.RecentActivity[:activityLimit]
	}

	return report, nil
}

// CustomerDashboard aggregates the caller's purchase history. Recent
// purchase sentences include the order status at render time, not the
// status when the purchase was made.
func CustomerDashboard(db *gorm.DB, actor auth.Context) (*CustomerReport, error) {
	report := &CustomerReport{}

	start, end := dayBounds(time.Now())
	var todayItems []models.OrderItem
	if err := db.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.date >= ? AND orders.date < ?", actor.UserID, start, end).
		Preload("Product").
		Find(&todayItems).Error; err != nil {
		return nil, err
	}
	for _, item := range todayItems {
		report.TodaysTotal += float64(item.Quantity) * item.Product.Price
		report.TodaysProducts = append(report.TodaysProducts, item.Product.DisplayName())
	}
	report.TodaysTotal = round2(report.TodaysTotal)

	var allItems []models.OrderItem
	if err := db.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", actor.UserID).
		Find(&allItems).Error; err != nil {
		return nil, err
	}
	distinct := make(map[uint]struct{})
	for _, item := range allItems {
		report.TotalQuantity += item.Quantity
		distinct[item.ProductID] = struct{}{}
	}
	report.TotalDistinctProducts = len(distinct)

	var latestOrders []models.Order
	if err := db.
		Preload("Items.Product").
		Where("user_id = ?", actor.UserID).
		Order("date DESC").
		Limit(activityLimit).
		Find(&latestOrders).Error; err != nil {
		return nil, err
	}
	for _, order := range latestOrders {
		for _, item := range order.Items {
			report.RecentPurchases = append(report.RecentPurchases,
				fmt.Sprintf("You purchased %d x %s on %s (Status: %s)",
					item.Quantity, item.Product.DisplayName(), activityDate(order.Date), order.Status))
		}
	}

	return report, nil
}
