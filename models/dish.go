package models

import "time"

type Dish struct {
	ID              uint         `gorm:"primaryKey" json:"dish_id"`
	RestaurantID    uint         `gorm:"not null;index" json:"restaurant_id"`
	Restaurant      Restaurant   `gorm:"foreignKey:RestaurantID" json:"-"`
	Name            string       `gorm:"type:varchar(255);not null" json:"name"`
	Price           float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	PrepTimeMinutes int          `gorm:"not null;default:0" json:"prep_time_minutes"`
	ImageUrl        *string      `gorm:"type:varchar(255)" json:"dish_image_url,omitempty"`
	Ingredients     []Ingredient `gorm:"many2many:dish_ingredients" json:"ingredients"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`
}
