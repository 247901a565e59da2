package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/booknowapp/booknow/controllers"
	"github.com/booknowapp/booknow/middlewares"
	"github.com/booknowapp/booknow/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	tableCtrl := controllers.NewTableController(db)
	bookingCtrl := controllers.NewBookingController(db)
	orderCtrl := controllers.NewOrderController(db)
	chefCtrl := controllers.NewChefController(db)
	waiterCtrl := controllers.NewWaiterController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Browsing needs no login
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id/dishes", restaurantCtrl.GetRestaurantDishes)
	r.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetTables)
	r.GET("/restaurants/:restaurant_id/tables/available", tableCtrl.GetAvailableTables)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/users/profile", userCtrl.GetProfile)
	auth.PUT("/users/profile", userCtrl.UpdateProfile)

	// BOOKINGS (customer)
	auth.POST("/bookings", bookingCtrl.CreateBooking)
	auth.GET("/bookings/mine", bookingCtrl.GetMyBookings)

	// ORDERS
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	// KITCHEN (chef)
	auth.GET("/kitchen/queue", chefCtrl.GetKitchenQueue)

	// WAITER
	auth.GET("/waiter/orders", waiterCtrl.GetServeQueue)

	// ADMIN
	admin := auth.Group("/admin")
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/chefs", adminCtrl.GetAllChefs)
		admin.POST("/chefs", adminCtrl.CreateChef)
		admin.PUT("/chefs/:chef_id", adminCtrl.UpdateChef)
		admin.DELETE("/chefs/:chef_id", adminCtrl.DeleteChef)
		admin.GET("/stats", adminCtrl.GetDashboardStats)
	}

	// WebSocket queue updates (token via query parameter)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/:role", controllers.KitchenWSHandler)
	}

	return r
}
