package models

import "time"

// Order status values as the backend stores them. Comparisons in the
// kitchen code are case-insensitive.
const (
	OrderStatusPending    = "Pending"
	OrderStatusInProgress = "InProgress"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	BookingID  uint        `gorm:"not null;index" json:"booking_id"`
	Booking    Booking     `gorm:"foreignKey:BookingID" json:"booking"`
	ChefID     *uint       `gorm:"index" json:"chef_id,omitempty"`
	Chef       *User       `gorm:"foreignKey:ChefID" json:"chef,omitempty"`
	Status     string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}
