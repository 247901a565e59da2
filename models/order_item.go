package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// IntList stores a slice of ids as a JSON array in a single text column.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]int(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = IntList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]int)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]int)(l))
	default:
		return errors.New("unsupported type for IntList")
	}
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"order_item_id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order              Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	DishID             uint      `gorm:"not null" json:"dish_id"`
	Dish               Dish      `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"dish"`
	Quantity           int       `gorm:"not null" json:"quantity"`
	Price              float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	SkippedIngredients IntList   `gorm:"type:text" json:"skipped_ingredients"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}
