package models

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"ingredient_id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}
