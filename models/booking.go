package models

import "time"

type Booking struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	User            User       `gorm:"foreignKey:UserID" json:"-"`
	RestaurantID    uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant      Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	TableID         uint       `gorm:"not null" json:"table_id"`
	Table           Table      `gorm:"foreignKey:TableID" json:"table"`
	BookingDateTime time.Time  `gorm:"not null;index" json:"booking_date_time"`
	MusicPreference string     `gorm:"type:varchar(100)" json:"music_preference"`
	Status          string     `gorm:"type:varchar(50);not null;default:'confirmed'" json:"status"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}
