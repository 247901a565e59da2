package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/models"
	"github.com/booknowapp/booknow/router"
	"github.com/booknowapp/booknow/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndBookingAndOrderFlow walks the main product flow:
// 1. Customer registers and logs in
// 2. Customer books an available table
// 3. Customer places an order with per-unit ingredient skips
// 4. Chef sees the order on the active queue and starts prep
// 5. Chef completes the order, waiter sees it on the serve queue
func TestEndToEndBookingAndOrderFlow(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	customerToken := registerAndLogin(t, r, "diner@example.com")

	bookingID := createBooking(t, r, customerToken)
	orderID := placeOrder(t, r, customerToken, bookingID)

	chefToken := loginAs(t, r, "chef@example.com")
	assertOrderOnQueue(t, r, chefToken, orderID, "visible")

	updateStatus(t, r, chefToken, orderID, "InProgress")
	updateStatus(t, r, chefToken, orderID, "Completed")

	waiterToken := loginAs(t, r, "waiter@example.com")
	assertOnServeQueue(t, r, waiterToken, orderID)
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Restaurant{}, &models.Table{}, &models.Booking{},
		&models.Ingredient{}, &models.Dish{}, &models.Order{}, &models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("kitchenpass"), bcrypt.DefaultCost)
	db.Create(&models.User{Name: "Chef", Email: "chef@example.com", Password: string(hashed), Role: models.RoleChef})
	db.Create(&models.User{Name: "Waiter", Email: "waiter@example.com", Password: string(hashed), Role: models.RoleWaiter})

	restaurant := models.Restaurant{Name: "Booknow Bistro", Address: "12 Harbour Road"}
	db.Create(&restaurant)
	db.Create(&models.Table{RestaurantID: restaurant.ID, TableNumber: "A1", Capacity: 4})

	onion := models.Ingredient{Name: "Onion"}
	db.Create(&onion)
	db.Create(&models.Dish{
		RestaurantID: restaurant.ID, Name: "Seafood Platter", Price: 28,
		PrepTimeMinutes: 90, Ingredients: []models.Ingredient{onion},
	})
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/register", "", map[string]string{
		"name": "Diner", "email": email, "password": "dinnertime",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	return login(t, r, email, "dinnertime")
}

func loginAs(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	return login(t, r, email, "kitchenpass")
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"email": email, "password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func createBooking(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()
	// Booked 20 minutes out so the 90 minute dish is already inside
	// the chef's prep window when the order lands
	at := time.Now().Add(20 * time.Minute).UTC()
	w := doJSON(t, r, "POST", "/bookings", token, map[string]interface{}{
		"restaurant_id":     1,
		"table_id":          1,
		"booking_date_time": at.Format(time.RFC3339),
		"music_preference":  "acoustic",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Booking `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func placeOrder(t *testing.T, r *gin.Engine, token string, bookingID uint) uint {
	t.Helper()
	w := doJSON(t, r, "POST", "/orders", token, map[string]interface{}{
		"booking_id": bookingID,
		"items": []map[string]interface{}{
			{
				"dish_id":             1,
				"quantity":            2,
				"unit_customizations": [][]int{{1}, {}},
			},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Order `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Differing skip-sets split into one line per unit
	assert.Len(t, resp.Data.OrderItems, 2)
	return resp.Data.ID
}

func assertOrderOnQueue(t *testing.T, r *gin.Engine, token string, orderID uint, section string) {
	t.Helper()
	w := doJSON(t, r, "GET", "/kitchen/queue", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	type queueRow struct {
		OrderID int `json:"orderId"`
	}
	var resp struct {
		Data struct {
			Visible  []queueRow `json:"visible"`
			Upcoming []queueRow `json:"upcoming"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	found := false
	rows := resp.Data.Visible
	if section == "upcoming" {
		rows = resp.Data.Upcoming
	}
	for _, row := range rows {
		if row.OrderID == int(orderID) {
			found = true
		}
	}
	assert.True(t, found, "order %d not in %s section", orderID, section)
}

func updateStatus(t *testing.T, r *gin.Engine, token string, orderID uint, status string) {
	t.Helper()
	url := fmt.Sprintf("/orders/%d/status", orderID)
	w := doJSON(t, r, "PUT", url, token, map[string]string{"status": status})
	assert.Equal(t, http.StatusOK, w.Code)
}

func assertOnServeQueue(t *testing.T, r *gin.Engine, token string, orderID uint) {
	t.Helper()
	w := doJSON(t, r, "GET", "/waiter/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Order `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	found := false
	for _, order := range resp.Data {
		if order.ID == orderID {
			found = true
			assert.Equal(t, models.OrderStatusCompleted, order.Status)
		}
	}
	assert.True(t, found, "order %d not on serve queue", orderID)
}
