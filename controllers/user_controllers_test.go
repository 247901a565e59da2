package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/controllers"
	"github.com/booknowapp/booknow/middlewares"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	userCtrl := controllers.NewUserController(db)
	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)
	auth := r.Group("/", middlewares.AuthMiddleware())
	auth.GET("/users/profile", userCtrl.GetProfile)
	return r
}

func TestRegisterLoginProfile(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	register := map[string]string{
		"name":     "Aisha",
		"email":    "Aisha@Example.com",
		"password": "supersecret",
	}
	body, _ := json.Marshal(register)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Emails are stored lower-case, login is case-insensitive on input
	login := map[string]string{"email": "aisha@example.com", "password": "supersecret"}
	body, _ = json.Marshal(login)
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)

	req, _ = http.NewRequest("GET", "/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aisha@example.com")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	register := map[string]string{"name": "Omar", "email": "omar@example.com", "password": "supersecret"}
	body, _ := json.Marshal(register)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	login := map[string]string{"email": "omar@example.com", "password": "wrong"}
	body, _ = json.Marshal(login)
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	req, _ := http.NewRequest("GET", "/users/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
