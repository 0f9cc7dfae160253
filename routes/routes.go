package routes

import (
	"net/http"

	"eventhub-backend/config"
	"eventhub-backend/controllers"
	"eventhub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles every HTTP controller the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Bookings *controllers.BookingController
	Services *controllers.ServiceController
	Reviews  *controllers.ReviewController
	Stats    *controllers.StatsController

	// UploadDir is served statically under /service-images.
	UploadDir string
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:3001",
			"https://event-management-front-nine.vercel.app",
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Event Management API is running!")
	})

	if ctrl.UploadDir != "" {
		r.Static("/service-images", ctrl.UploadDir)
	}

	api := r.Group("/api")
	{
		// Accounts
		api.POST("/users", ctrl.Auth.Register)
		api.GET("/confirm-email", ctrl.Auth.ConfirmEmail)
		api.POST("/login", ctrl.Auth.Login)
		api.GET("/users", utils.AuthMiddleware(), utils.AdminOnly(), ctrl.Auth.ListUsers)

		// Availability and bookings
		api.GET("/availability/:serviceId/:date", ctrl.Bookings.CheckAvailability)
		api.POST("/bookings", utils.AuthMiddleware(), ctrl.Bookings.CreateBooking)
		api.GET("/bookings", utils.AuthMiddleware(), ctrl.Bookings.ListBookings)
		api.PATCH("/bookings/:id", ctrl.Bookings.UpdateBookingStatus)

		// Catalog reads are public
		api.GET("/services", ctrl.Services.GetServices)
		api.GET("/services/:id", ctrl.Services.GetService)

		// Catalog mutations require an admin token
		admin := api.Group("", utils.AuthMiddleware(), utils.AdminOnly())
		{
			admin.POST("/services", ctrl.Services.CreateService)
			admin.PATCH("/services/:id", ctrl.Services.UpdateService)
			admin.DELETE("/services/:id", ctrl.Services.DeleteService)
			admin.POST("/services/:id/images", ctrl.Services.UploadImage)
			admin.PUT("/services/:id/images", ctrl.Services.ReorderImages)
			admin.DELETE("/services/:id/images/:name", ctrl.Services.RemoveImage)

			admin.GET("/admin/stats", ctrl.Stats.GetStats)
		}

		// Reviews
		api.GET("/reviews", ctrl.Reviews.ListReviews)
		api.POST("/reviews", utils.AuthMiddleware(), ctrl.Reviews.CreateReview)
	}

	return r
}
