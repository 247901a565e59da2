package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/kitchen"
	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/utils"
)

type ChefController struct {
	DB *gorm.DB
}

func NewChefController(db *gorm.DB) *ChefController {
	return &ChefController{DB: db}
}

// GetKitchenQueue -> the chef's open orders split into the two display
// sections: visible (inside the prep window) and upcoming
func (cc *ChefController) GetKitchenQueue(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleChef {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	chefID, _ := c.Get("user_id")

	var orders []models.Order
	if err := cc.DB.Preload("OrderItems").
		Preload("OrderItems.Dish").
		Preload("OrderItems.Dish.Ingredients").
		Preload("Booking").
		Where("chef_id = ?", chefID).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	queue := make([]kitchen.QueueOrder, 0, len(orders))
	for _, order := range orders {
		queue = append(queue, toQueueOrder(order))
	}

	partition := kitchen.PartitionOrders(queue, time.Now())
	if partition.Excluded > 0 {
		utils.InfoLogger.Printf("kitchen queue for chef %v: %d order(s) excluded (terminal, stale, or unscheduled)",
			chefID, partition.Excluded)
	}

	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", partition)
}

// toQueueOrder flattens a stored order into the shape the kitchen
// display consumes, resolving skipped ingredient ids to names.
func toQueueOrder(order models.Order) kitchen.QueueOrder {
	dishes := make([]kitchen.QueueDish, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		names := make(map[uint]string, len(item.Dish.Ingredients))
		for _, ing := range item.Dish.Ingredients {
			names[ing.ID] = ing.Name
		}

		skipped := make([]string, 0, len(item.SkippedIngredients))
		for _, id := range item.SkippedIngredients {
			if name, ok := names[uint(id)]; ok {
				skipped = append(skipped, name)
			}
		}

		prep := item.Dish.PrepTimeMinutes
		dishes = append(dishes, kitchen.QueueDish{
			OrderItemID:        int(item.ID),
			DishID:             int(item.DishID),
			DishName:           item.Dish.Name,
			Quantity:           item.Quantity,
			PrepTimeMinutes:    &prep,
			SkippedIngredients: skipped,
		})
	}

	queueOrder := kitchen.QueueOrder{
		OrderID: int(order.ID),
		Status:  order.Status,
		Dishes:  dishes,
	}
	if !order.Booking.BookingDateTime.IsZero() {
		queueOrder.BookingDateTime = order.Booking.BookingDateTime.UTC().Format(time.RFC3339)
	}
	return queueOrder
}
