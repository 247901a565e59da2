package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/kitchen"
	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// CreateBooking -> reserve a table at a restaurant for a datetime
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, _ := c.Get("user_id")

	type BookingReq struct {
		RestaurantID    uint   `json:"restaurant_id" binding:"required"`
		TableID         uint   `json:"table_id" binding:"required"`
		BookingDateTime string `json:"booking_date_time" binding:"required"`
		MusicPreference string `json:"music_preference"`
	}

	var req BookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	at, err := utils.ParseBookingTime(req.BookingDateTime)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if at.Before(time.Now()) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("booking time is in the past"))
		return
	}

	var table models.Table
	if err := bc.DB.Where("id = ? AND restaurant_id = ?", req.TableID, req.RestaurantID).
		First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found at this restaurant"))
		return
	}

	// Reject double-booking inside the slot window
	var clashes int64
	bc.DB.Model(&models.Booking{}).
		Where("table_id = ? AND status = ?", req.TableID, "confirmed").
		Where("booking_date_time > ? AND booking_date_time < ?",
			at.Add(-bookingSlot), at.Add(bookingSlot)).
		Count(&clashes)
	if clashes > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("table is already booked for this time"))
		return
	}

	booking := models.Booking{
		UserID:          userID.(uint),
		RestaurantID:    req.RestaurantID,
		TableID:         req.TableID,
		BookingDateTime: at,
		MusicPreference: req.MusicPreference,
		Status:          "confirmed",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := bc.DB.Create(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kitchen.BroadcastBookingCreate(booking)

	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// GetMyBookings -> the authenticated user's bookings, newest first
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var bookings []models.Booking
	if err := bc.DB.Preload("Table").
		Where("user_id = ?", userID).
		Order("booking_date_time desc").
		Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your bookings", bookings)
}
