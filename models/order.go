package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is one line of a user's cart. Lines are created on add-to-cart and
// deleted on cart clear or on successful order placement.
type Cart struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(8,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"` // unit_price * quantity, fixed at add time
	CreatedAt  time.Time       `json:"created_at"`
}

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           User            `json:"-" gorm:"foreignKey:UserID"`
	DeliveryCrewID *uint           `json:"delivery_crew_id"`
	DeliveryCrew   *User           `json:"delivery_crew,omitempty" gorm:"foreignKey:DeliveryCrewID"`
	Status         bool            `json:"status" gorm:"not null;default:false"` // false=pending, true=delivered
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(8,2);not null"`
	Date           time.Time       `json:"date" gorm:"not null"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a cart line, owned by its order.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(8,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"`
}
