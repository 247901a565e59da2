package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/utils"
)

type WaiterController struct {
	DB *gorm.DB
}

func NewWaiterController(db *gorm.DB) *WaiterController {
	return &WaiterController{DB: db}
}

// GetServeQueue -> orders the kitchen has finished plus those still in
// progress, with table info so the waiter knows where to go
func (wc *WaiterController) GetServeQueue(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleWaiter && role != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var orders []models.Order
	if err := wc.DB.Preload("OrderItems").
		Preload("OrderItems.Dish").
		Preload("Booking").
		Preload("Booking.Table").
		Where("status IN ?", []string{models.OrderStatusInProgress, models.OrderStatusCompleted}).
		Order("updated_at desc").
		Limit(50).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Serve queue", orders)
}
