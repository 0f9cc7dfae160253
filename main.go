package main

import (
	"fmt"
	"log"
	"os"

	"eventhub-backend/config"
	"eventhub-backend/controllers"
	"eventhub-backend/models"
	"eventhub-backend/routes"
	"eventhub-backend/services"
	"eventhub-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	stores := storage.NewGormStores(db)
	cache := storage.NewCatalogCache(storage.InitializeRedis())

	images, err := storage.NewDiskImageStore(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		log.Fatalf("Failed to set up image store: %v", err)
	}

	var notifier services.Notifier = services.LogNotifier{}
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		notifier = services.NewTwilioNotifier()
	}
	var mailer services.Mailer = services.LogMailer{}
	if os.Getenv("RESEND_API_KEY") != "" {
		mailer = services.NewResendMailer()
	}

	availability := services.NewAvailabilityEngine(stores.Bookings)
	bookings := services.NewBookingWorkflow(stores.Bookings, stores.Services, stores.Users, availability, notifier)
	credentials := services.NewCredentialService(stores.Users, mailer)
	catalog := services.NewCatalogManager(stores.Services, stores.Bookings, images, cache)
	reviews := services.NewReviewService(stores.Reviews, stores.Services, stores.Users)
	reports := services.NewReportService(stores.Bookings, stores.Services)

	reminders := services.NewReminderService(stores.Bookings, notifier)
	reminders.StartScheduler()

	r := routes.SetupRouter(routes.Controllers{
		Auth:      &controllers.AuthController{Credentials: credentials},
		Bookings:  &controllers.BookingController{Bookings: bookings, Availability: availability},
		Services:  &controllers.ServiceController{Catalog: catalog, Images: images},
		Reviews:   &controllers.ReviewController{Reviews: reviews},
		Stats:     &controllers.StatsController{Reports: reports},
		UploadDir: images.Dir(),
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
