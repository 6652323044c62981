package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // order placed, awaiting fulfilment
	OrderStatusShipped   OrderStatus = "Shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // customer received the items, terminal
	OrderStatusCancelled OrderStatus = "Cancelled" // cancelled before shipping, terminal
)

// statusTransitions is the closed transition graph for order fulfilment.
// A status may only move forward; terminal states have no successors.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ParseOrderStatus maps a form value to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for status := range statusTransitions {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, nil
		}
	}
	return "", errors.New("invalid order status")
}

// CanTransition reports whether an order in status s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further status change is allowed.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

type Order struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	OrderRef string      `gorm:"uniqueIndex;size:60" json:"order_ref"`
	UserID   uint        `gorm:"not null;index" json:"user_id"`
	User     User        `gorm:"foreignKey:UserID" json:"user"`
	Status   OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	Date     time.Time   `gorm:"not null;index" json:"date"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem snapshots the purchased quantity at order time. The quantity is
// independent of any later product mutation; the product row itself is a
// weak reference.
type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"index" json:"order_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}
