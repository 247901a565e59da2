package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants -> restaurant listing for the home screen
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Order("name asc").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantDishes -> menu of one restaurant with ingredients,
// so the client can offer per-unit ingredient skipping
func (rc *RestaurantController) GetRestaurantDishes(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var dishes []models.Dish
	if err := rc.DB.Preload("Ingredients").
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").
		Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant menu", dishes)
}
