package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/kitchen"
	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/ordering"
	"github.com/booknowapp/booknow/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder -> compose the raw cart into order lines and persist them.
// Units of a dish sharing a skip-set become one line, units that differ
// become one line each.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, _ := c.Get("user_id")

	type ItemReq struct {
		DishID             int     `json:"dish_id" binding:"required"`
		Quantity           int     `json:"quantity"`
		UnitCustomizations [][]int `json:"unit_customizations"`
	}
	type OrderReq struct {
		BookingID uint      `json:"booking_id" binding:"required"`
		Items     []ItemReq `json:"items" binding:"required"`
	}

	var req OrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var booking models.Booking
	if err := oc.DB.Where("id = ? AND user_id = ?", req.BookingID, userID).
		First(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}

	selections := make(map[int]ordering.DishSelection, len(req.Items))
	for _, item := range req.Items {
		selections[item.DishID] = ordering.DishSelection{
			DishID:             item.DishID,
			Quantity:           item.Quantity,
			UnitCustomizations: item.UnitCustomizations,
		}
	}

	lines, err := ordering.Compose(selections)
	if errors.Is(err, ordering.ErrEmptyCart) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("please select at least one dish"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order := models.Order{
		UserID:    userID.(uint),
		BookingID: booking.ID,
		ChefID:    oc.pickChef(),
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tx := oc.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for _, line := range lines {
		var dish models.Dish
		if err := tx.Where("id = ? AND restaurant_id = ?", line.DishID, booking.RestaurantID).
			First(&dish).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("dish %d is not on this restaurant's menu", line.DishID))
			return
		}

		item := models.OrderItem{
			OrderID:            order.ID,
			DishID:             dish.ID,
			Quantity:           line.Quantity,
			Price:              dish.Price,
			SkippedIngredients: models.IntList(line.SkippedIngredients),
			Status:             "pending",
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	tx.Commit()

	if order.ChefID != nil {
		kitchen.BroadcastQueueUpdate(*order.ChefID)
	}

	oc.DB.Preload("OrderItems").First(&order, order.ID)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// pickChef assigns the chef with the fewest open orders, nil when no
// chef account exists yet
func (oc *OrderController) pickChef() *uint {
	var result struct {
		ID uint
	}
	err := oc.DB.Raw(`
		SELECT u.id FROM users u
		LEFT JOIN orders o ON o.chef_id = u.id AND o.status IN ('Pending', 'InProgress')
		WHERE u.role = 'chef'
		GROUP BY u.id
		ORDER BY COUNT(o.id) ASC, u.id ASC
		LIMIT 1
	`).Scan(&result).Error
	if err != nil || result.ID == 0 {
		return nil
	}
	return &result.ID
}

// GetOrderByID -> detail of one order with its lines
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("OrderItems").Preload("OrderItems.Dish").
		First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> chef/waiter/admin move an order through its
// lifecycle. The response is deliberately minimal; clients re-fetch
// their queue after a success.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleChef && role != models.RoleWaiter && role != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type StatusReq struct {
		Status string `json:"status" binding:"required"`
	}
	var req StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	newStatus, ok := normalizeOrderStatus(req.Status)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown status %q", req.Status))
		return
	}

	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kitchen.BroadcastOrderUpdate(order)
	if newStatus == models.OrderStatusCompleted {
		kitchen.BroadcastOrderReady(order)
		kitchen.BroadcastWaiterNotification(fmt.Sprintf("Order #%d is ready to serve", order.ID))
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", gin.H{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

func normalizeOrderStatus(s string) (string, bool) {
	switch strings.ToLower(s) {
	case "pending":
		return models.OrderStatusPending, true
	case "inprogress":
		return models.OrderStatusInProgress, true
	case "completed":
		return models.OrderStatusCompleted, true
	case "cancelled":
		return models.OrderStatusCancelled, true
	default:
		return "", false
	}
}
