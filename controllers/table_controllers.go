package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/utils"
)

// bookingSlot is how long a booking blocks its table. A table is free
// at instant T unless a confirmed booking starts within (T-slot, T+slot).
const bookingSlot = 2 * time.Hour

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetTables -> full floor plan of one restaurant
func (tc *TableController) GetTables(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var tables []models.Table
	if err := tc.DB.Where("restaurant_id = ?", restaurantID).
		Order("table_number asc").
		Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant tables", tables)
}

// GetAvailableTables -> tables free at ?datetime= for one restaurant
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	datetime := c.Query("datetime")
	if datetime == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("datetime query parameter is required"))
		return
	}
	at, err := utils.ParseBookingTime(datetime)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tables, err := tc.availableTables(restaurantID, at)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

func (tc *TableController) availableTables(restaurantID string, at time.Time) ([]models.Table, error) {
	var tables []models.Table
	err := tc.DB.Where("restaurant_id = ?", restaurantID).
		Where("id NOT IN (?)", tc.DB.Model(&models.Booking{}).
			Select("table_id").
			Where("restaurant_id = ? AND status = ?", restaurantID, "confirmed").
			Where("booking_date_time > ? AND booking_date_time < ?",
				at.Add(-bookingSlot), at.Add(bookingSlot))).
		Order("table_number asc").
		Find(&tables).Error
	return tables, err
}
