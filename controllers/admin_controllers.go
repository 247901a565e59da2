package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetAllChefs -> list chef accounts
func (ac *AdminController) GetAllChefs(c *gin.Context) {
	var chefs []models.User
	if err := ac.DB.Where("role = ?", models.RoleChef).
		Order("name asc").
		Find(&chefs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of chefs", chefs)
}

// CreateChef -> register a chef account
func (ac *AdminController) CreateChef(c *gin.Context) {
	type ChefReq struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	var req ChefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	chef := models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Role:     models.RoleChef,
	}
	if err := ac.DB.Create(&chef).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("email already registered"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Chef created", chef)
}

// UpdateChef -> rename or re-email a chef
func (ac *AdminController) UpdateChef(c *gin.Context) {
	chefID := c.Param("chef_id")

	var chef models.User
	if err := ac.DB.Where("id = ? AND role = ?", chefID, models.RoleChef).
		First(&chef).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("chef not found"))
		return
	}

	type UpdateReq struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		chef.Name = *req.Name
	}
	if req.Email != nil {
		chef.Email = strings.ToLower(*req.Email)
	}
	chef.UpdatedAt = time.Now()

	if err := ac.DB.Save(&chef).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Chef updated", chef)
}

// DeleteChef -> remove a chef account; their open orders go back to the
// unassigned pool
func (ac *AdminController) DeleteChef(c *gin.Context) {
	chefID := c.Param("chef_id")

	var chef models.User
	if err := ac.DB.Where("id = ? AND role = ?", chefID, models.RoleChef).
		First(&chef).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("chef not found"))
		return
	}

	tx := ac.DB.Begin()
	if err := tx.Model(&models.Order{}).
		Where("chef_id = ?", chef.ID).
		Update("chef_id", nil).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&chef).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Chef deleted", gin.H{"chef_id": chef.ID})
}

// GetDashboardStats -> headline counters for the admin home screen
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalBookings int64 `json:"total_bookings"`
		TodayBookings int64 `json:"today_bookings"`
		OpenOrders    int64 `json:"open_orders"`
		TotalChefs    int64 `json:"total_chefs"`
	}

	ac.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)

	startOfDay := time.Now().Truncate(24 * time.Hour)
	ac.DB.Model(&models.Booking{}).
		Where("booking_date_time >= ? AND booking_date_time < ?", startOfDay, startOfDay.Add(24*time.Hour)).
		Count(&stats.TodayBookings)

	ac.DB.Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderStatusPending, models.OrderStatusInProgress}).
		Count(&stats.OpenOrders)

	ac.DB.Model(&models.User{}).
		Where("role = ?", models.RoleChef).
		Count(&stats.TotalChefs)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
